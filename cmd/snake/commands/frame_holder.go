package commands

import (
	"sync"

	"github.com/Apurbabhaumik/snakegame/rules"
)

// frameHolder records the snapshot of every committed tick so a finished run
// can be stepped through afterwards. In-memory only, discarded on restart.
type frameHolder struct {
	sync.RWMutex
	frames []rules.Snapshot
}

func (fh *frameHolder) append(snap rules.Snapshot) {
	fh.Lock()
	defer fh.Unlock()

	fh.frames = append(fh.frames, snap)
}

func (fh *frameHolder) get(index int) rules.Snapshot {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 {
		index = 0
	}
	if index >= len(fh.frames) {
		index = len(fh.frames) - 1
	}
	return fh.frames[index]
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
