//go:build tinygo && baremetal && nodisplay

package hal

func newDisplay() DisplayTransport { return nil }
