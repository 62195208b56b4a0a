package ui

// Gallery geometry. Card sizes include the rounded border.
const (
	cardWidth  = 36
	cardHeight = 5
	cardGap    = 1

	// chromeLines covers header, search bar, and footer.
	chromeLines = 3

	modalWidth = 58
)

// Terminal width below which the footer shows short key hints.
const LayoutCompactWidth = 80

// galleryColumns returns how many cards fit side by side in width.
func galleryColumns(width int) int {
	cols := (width + cardGap) / (cardWidth + cardGap)
	return max(cols, 1)
}

// galleryRows returns how many card rows fit in height.
func galleryRows(height int) int {
	return max(height/cardHeight, 1)
}
