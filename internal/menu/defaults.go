package menu

import (
	"github.com/microjournal/mjmenu/internal/config"
)

// Banner is drawn above the entry grid.
var Banner = []string{
	"|12▐▀▀▀▀▀▀|11 MICRO JOURNAL 3000 |12▀▀▀▀▀▀▌|23",
	"|12▐▄▄▄|23 |14Portable Writing Station|23 |12▄▄▄▌|23",
}

// Prompt is drawn below the grid; the cursor stays at its end.
const Prompt = "|11Make a selection: |23"

// DefaultEntries returns the Micro Journal key bindings for cfg.
func DefaultEntries(cfg config.Config) []Entry {
	return []Entry{
		{Key: 'm', Label: "Markdown", Action: RunCommand(cfg.Script("newMarkDown.sh"))},
		{Key: 'w', Label: "Wordgrinder", Action: RunCommand(cfg.Script("newwrdgrndr.sh"))},
		{Key: 'n', Label: "Neovim", Action: RunCommand("nvim")},
		{Key: 'c', Label: "Word Count", Action: RunCommand(cfg.Script("wordcount.sh"))},
		{Key: 'f', Label: "File Manager", Action: RunCommand("yazi")},
		{Key: 's', Label: "Share Files", Action: RunCommand(cfg.Script("share.sh"))},
		{Key: 'i', Label: "System Info", Action: RunCommand(cfg.Script("sysinfo.sh"))},
		{Key: 'p', Label: "Pi Config", Action: RunCommand(cfg.Script("config.sh"))},
		{Key: 'u', Label: "Network ⬆", Action: RunCommand(cfg.Script("network-enable.sh"))},
		{Key: 'd', Label: "Network ⬇", Action: RunCommand(cfg.Script("network-disable.sh"))},
		{Key: 't', Label: "Time Clock", Action: RunCommand("tty-clock -c -t -B -S -C 3")},
		{Key: 'x', Label: "Matrix", Action: RunCommand("neo -c cyan")},
		{Key: 'z', Label: "Z Shell", Action: StartShell},
		{Key: 'l', Label: "Menu Reload", Action: ReloadSelf},
		{Key: 'q', Label: "Shutdown", KeyColor: "|12", Action: RunCommand(cfg.Script("shutdown.sh"))},
		{Key: 'r', Label: "Reboot", KeyColor: "|12", Action: RunCommand(cfg.Script("reboot.sh"))},
		{Key: 'e', Label: "Exit Menu", KeyColor: "|14", Action: Quit},
	}
}

// DefaultRows lays the entries out in four columns: writing, files,
// network/system, session.
var DefaultRows = [][]rune{
	{'m', 'f', 'u', 'z'},
	{'w', 's', 'd', 'l'},
	{'n', 'i', 't', 'q'},
	{'c', 'p', 'x', 'r'},
	{'e'},
}

// DefaultTable builds the Micro Journal table for cfg.
func DefaultTable(cfg config.Config) (*Table, error) {
	return NewTable(DefaultEntries(cfg), DefaultRows)
}
