package theme

import "os"

const iconsEnv = "ENV_BACKUP_ICONS"

// Nerd Font Icons (Private Constants)
const (
	nerdIconSuccess = "\U000f012c" // md-check (U+F012C)
	nerdIconError   = "\uea87"     // cod-error (U+EA87)
	nerdIconWarning = "\uf071"     // fa-warning (U+F071)
	nerdIconInfo    = "\U000f02fc" // md-information (U+F02FC)
	nerdIconArrow   = "\U000f0054" // md-arrow_right (U+F0054)
	nerdIconBullet  = "\uf444"     // oct-dot_fill (U+F444)
	nerdIconShell   = "\ue691"     // seti-shell (U+E691)
	nerdIconArchive = "\U000f003c" // md-archive (U+F003C)
	nerdIconSave    = "\U000f0249" // md-floppy (U+F0249)
	nerdIconTrash   = "\U000f0a79" // md-trash_can (U+F0A79)
)

// Plain Unicode Icons (Private Constants)
const (
	plainIconSuccess = "✓"
	plainIconError   = "✗"
	plainIconWarning = "⚠"
	plainIconInfo    = "ℹ"
	plainIconArrow   = "→"
	plainIconBullet  = "•"
	plainIconShell   = "▶"
	plainIconArchive = "▣"
	plainIconSave    = "↓"
	plainIconTrash   = "⌫"
)

// Public Icon Variables
var (
	IconSuccess string
	IconError   string
	IconWarning string
	IconInfo    string
	IconArrow   string
	IconBullet  string
	IconShell   string
	IconArchive string
	IconSave    string
	IconTrash   string
)

func init() {
	mode := os.Getenv(iconsEnv)
	if mode == "" {
		mode = loadTUIConfig().Icons
	}
	SetIcons(mode == "nerd")
}

// SetIcons switches between Nerd Font glyphs and plain Unicode symbols.
// Plain symbols are the default.
func SetIcons(nerd bool) {
	if nerd {
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
		IconArrow = nerdIconArrow
		IconBullet = nerdIconBullet
		IconShell = nerdIconShell
		IconArchive = nerdIconArchive
		IconSave = nerdIconSave
		IconTrash = nerdIconTrash
		return
	}

	IconSuccess = plainIconSuccess
	IconError = plainIconError
	IconWarning = plainIconWarning
	IconInfo = plainIconInfo
	IconArrow = plainIconArrow
	IconBullet = plainIconBullet
	IconShell = plainIconShell
	IconArchive = plainIconArchive
	IconSave = plainIconSave
	IconTrash = plainIconTrash
}
