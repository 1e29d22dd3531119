package filters

import (
	"fmt"
	"strconv"
	"strings"
)

// FmtNum formats a float for use in style attributes (no trailing zeros).
func FmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FilterCSS renders the backdrop-filter function list for the given values.
// The rendering surface applies it as-is; no pixel work happens here.
func FilterCSS(v Values) string {
	parts := []string{
		fmt.Sprintf("blur(%spx)", FmtNum(v.Blur)),
		fmt.Sprintf("brightness(%s)", FmtNum(v.Brightness)),
		fmt.Sprintf("contrast(%s)", FmtNum(v.Contrast)),
		fmt.Sprintf("grayscale(%s)", FmtNum(v.Grayscale)),
		fmt.Sprintf("hue-rotate(%sdeg)", FmtNum(v.HueRotate)),
		fmt.Sprintf("invert(%s)", FmtNum(v.Invert)),
		fmt.Sprintf("saturate(%s)", FmtNum(v.Saturate)),
		fmt.Sprintf("sepia(%s)", FmtNum(v.Sepia)),
	}
	return strings.Join(parts, " ")
}

// TintCSS renders the tint overlay declarations, or "" when no tint color is
// set.
func TintCSS(v Values) string {
	if strings.TrimSpace(v.Background) == "" {
		return ""
	}
	return fmt.Sprintf("background: %s; opacity: %s; mix-blend-mode: %s",
		v.Background, FmtNum(v.Opacity), v.BlendMode)
}
