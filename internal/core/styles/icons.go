package styles

import (
	"path/filepath"
	"strings"
)

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconGallery = "\U000F02E9" // 󰋩
	IconClose   = "✕"
	IconPrev    = "‹"
	IconNext    = "›"
	IconMissing = "\U000F0A75" // 󰩵
	IconCopy    = "\uf0c5"
)

// Image type icons
var (
	IconFileImage = "\U000F021F " // 󰈟
	IconFileGIF   = "\U000F0AD7 " // 󰫗
	IconFileSVG   = "\U000F0721 " // 󰜡
	IconFileRaw   = "\U000F0100 " // 󰄀
)

// IconForRef picks an icon for an image reference by extension.
func IconForRef(ref string) string {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".gif":
		return IconFileGIF
	case ".svg":
		return IconFileSVG
	case ".tif", ".tiff", ".heic", ".avif":
		return IconFileRaw
	default:
		return IconFileImage
	}
}
