package ui

// NewDiv returns a non-focusable container. Its children are placed by
// their own coordinates, or in a row when the layout property is set.
func NewDiv() *Widget {
	return NewWidget(TypeDiv)
}

// NewElement returns a fresh widget of the given kind, using the variant
// type where one exists.
func NewElement(kind WidgetType) Element {
	switch kind {
	case TypeButton:
		return NewButton("")
	case TypeIconButton:
		return NewIconButton("", true)
	case TypeLabel:
		return NewLabel("")
	case TypeCheckbox:
		return NewCheckbox()
	case TypeSpinner:
		return NewSpinner()
	case TypeRibbon:
		return NewRibbon()
	default:
		return NewWidget(kind)
	}
}
