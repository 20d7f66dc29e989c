//go:build linux

package monitor

import (
	"fmt"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xinerama"
	"github.com/jezek/xgb/xproto"
)

// ListMonitors returns the Xinerama screens of $DISPLAY, or the root window
// when Xinerama is unavailable.
func ListMonitors() ([]Monitor, error) {
	return ListMonitorsDisplay(os.Getenv("DISPLAY"))
}

// ListMonitorsDisplay enumerates the screens of the named X display.
func ListMonitorsDisplay(display string) ([]Monitor, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("open X display %q: %w", display, err)
	}
	defer conn.Close()

	if err := xinerama.Init(conn); err == nil {
		reply, err := xinerama.QueryScreens(conn).Reply()
		if err == nil && len(reply.ScreenInfo) > 0 {
			// Xinerama lists the primary output first.
			list := make([]Monitor, 0, len(reply.ScreenInfo))
			for i, info := range reply.ScreenInfo {
				list = append(list, Monitor{
					Index:   i + 1,
					X:       int(info.XOrg),
					Y:       int(info.YOrg),
					W:       int(info.Width),
					H:       int(info.Height),
					Primary: i == 0,
				})
			}
			return list, nil
		}
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return []Monitor{{
		Index:   1,
		W:       int(screen.WidthInPixels),
		H:       int(screen.HeightInPixels),
		Primary: true,
	}}, nil
}
