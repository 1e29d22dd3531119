// package static embeds the overlay page and its assets.
package static

import "embed"

//go:embed overlay.html css js
var FS embed.FS
