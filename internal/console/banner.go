package console

import (
	"fmt"

	"github.com/muesli/termenv"
)

var bannerLines = [6]string{
	`  _____ __     __  _____  _____   _____   _____  _       _`,
	` / ____|\ \   / / / ____||  __ \ |  __ \ |_   _|| |     | |`,
	`| (___   \ \_/ / | (___  | |  | || |__) |  | |  | |     | |`,
	` \___ \   \   /   \___ \ | |  | ||  _  /   | |  | |     | |`,
	` ____) |   | |    ____) || |__| || | \ \  _| |_ | |____ | |____`,
	`|_____/    |_|   |_____/ |_____/ |_|  \_\|_____||______||______|`,
}

// Banner prints the startup banner with a gradient color scheme
// (emerald to lime) followed by a version tag.
func (c *Console) Banner(version string) {
	fmt.Fprintln(c.out)
	if c.plain {
		for _, line := range bannerLines {
			fmt.Fprintln(c.out, line)
		}
	} else {
		colors := [6]string{"#059669", "#10b981", "#34d399", "#4ade80", "#86efac", "#a3e635"}
		p := termenv.ColorProfile()
		for i, line := range bannerLines {
			fmt.Fprintln(c.out, termenv.String(line).Foreground(p.Color(colors[i])))
		}
	}
	fmt.Fprintln(c.out)
	c.say(c.styles.Muted, fmt.Sprintf("  sysadmin troubleshooting drills  v%s", version))
	fmt.Fprintln(c.out)
}
