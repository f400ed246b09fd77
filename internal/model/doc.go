package model

// Package model defines the value types shared by the shell: window geometry,
// sizes, and the screen-centred default placement. Structures are plain values
// so they can be persisted by the settings store without adapters.
