// Package assets holds the compressed icons drawn by the drag-and-drop screen.
//
// Generated with cmd/mkicon -mode encode.
package assets

// FileLogo is a document with a folded corner.
var FileLogo = []byte{
	0x16, 0x1c, 0x48, // 22x28, 72 payload bytes
	0xdd, 0x9a, 0x03, 0x95, 0x03, 0x95, 0x03, 0x10, 0x22, 0x04, 0x03, 0x10,
	0x22, 0x04, 0x03, 0x10, 0x22, 0x04, 0x03, 0x10, 0x22, 0x04, 0x03, 0x10,
	0x22, 0x04, 0x03, 0x10, 0x22, 0x04, 0x03, 0x10, 0x22, 0x04, 0x03, 0x10,
	0x22, 0x04, 0x03, 0x10, 0x22, 0x04, 0x03, 0x10, 0x22, 0x87, 0x03, 0x10,
	0x22, 0x87, 0xc8, 0x08, 0x11, 0x40, 0x42, 0x08, 0x11, 0x40, 0x44, 0x08,
	0x11, 0x40, 0x48, 0x94, 0x21, 0x01, 0x8e, 0x41, 0x01, 0x8e, 0x01, 0xd6,
}

// ArrowLogo is a right-pointing arrow.
var ArrowLogo = []byte{
	0x20, 0x18, 0x41, // 32x24, 65 payload bytes
	0x89, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f,
	0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f,
	0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f, 0x91, 0x3f,
	0x91, 0x3f, 0x91, 0x3f, 0x88, 0xd8, 0x7e, 0xd0, 0x78, 0xd0, 0x60, 0xd0,
	0x87, 0xd0, 0x89, 0xce, 0x8b, 0xcc, 0x8d, 0xca, 0x8f, 0xc8, 0x91, 0x3f,
	0x92, 0x0f, 0x92, 0x03, 0x00,
}

// PendriveLogo is a USB stick seen from above.
var PendriveLogo = []byte{
	0x1e, 0x12, 0x44, // 30x18, 68 payload bytes
	0xd3, 0x90, 0x03, 0x8b, 0x03, 0x8b, 0x03, 0x04, 0x30, 0x40, 0x88, 0x03,
	0x04, 0x30, 0x40, 0x88, 0x03, 0x04, 0x30, 0x40, 0x88, 0x03, 0x04, 0x30,
	0x40, 0x88, 0x03, 0x04, 0x30, 0x40, 0x88, 0x03, 0x04, 0x30, 0x40, 0x88,
	0x03, 0x04, 0x30, 0x40, 0x88, 0x03, 0x8b, 0x03, 0x8b, 0x03, 0x8b, 0xd3,
	0x10, 0x40, 0x88, 0x01, 0x04, 0x10, 0x43, 0x88, 0x19, 0x04, 0x10, 0x4c,
	0x88, 0x61, 0x04, 0x10, 0x40, 0x88, 0xca, 0x00,
}
