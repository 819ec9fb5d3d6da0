package notify

import (
	"os"
	"os/exec"
	"runtime"

	"proxylistgen/internal/logging"
)

var log = logging.Logger

// playerCommands maps GOOS to the command that plays a wav file.
var playerCommands = map[string]string{
	"darwin": "afplay",
	"linux":  "aplay",
}

// PlaySound plays the notification sound file, if present. It is a
// best-effort courtesy: any problem is logged and swallowed, and Windows
// is skipped entirely.
func PlaySound(file string) {
	if runtime.GOOS == "windows" {
		return
	}
	player, ok := playerCommands[runtime.GOOS]
	if !ok {
		log.Warnf("no sound player configured for %s", runtime.GOOS)
		return
	}
	if _, e := os.Stat(file); e != nil {
		log.Warnf("sound file %s not found, skipping notification", file)
		return
	}
	if e := exec.Command(player, file).Run(); e != nil {
		log.Warnf("failed to play notification sound: %+v", e)
	}
}
