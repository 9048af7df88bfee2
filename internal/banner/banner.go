package banner

import (
	"github.com/charmbracelet/lipgloss"

	"schedbench/internal/cli"
)

func GetString() string {
	style := lipgloss.NewStyle().
		Foreground(cli.ColorPrimary).
		Bold(true)

	ascii := `
   _____      __             ____                  __
  / ___/_____/ /_  ___  ____/ / /_  ___  ____  _____/ /_
  \__ \/ ___/ __ \/ _ \/ __  / __ \/ _ \/ __ \/ ___/ __ \
 ___/ / /__/ / / /  __/ /_/ / /_/ /  __/ / / / /__/ / / /
/____/\___/_/ /_/\___/\__,_/_.___/\___/_/ /_/\___/_/ /_/`

	return "\n" + style.Render(ascii) + "\n"
}
