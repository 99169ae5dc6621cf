package osapi

// Window style and extended-style bits relevant to should_manage
// classification. Values match the platform's GWL_STYLE / GWL_EXSTYLE
// bitmasks.
const (
	WSCaption = 0x00C00000

	WSExWindowEdge    = 0x00000100
	WSExDlgModalFrame = 0x00000001
	WSExLayered       = 0x00080000
)
