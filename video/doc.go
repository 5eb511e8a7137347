// Package video is the video layer for the device. It provides a tile bank for
// defining tile patterns, a viewport over the toroidal 32x32 background map, a
// cursor addressed text console that writes tiles to the map, and an object
// pipeline that copies a shadow object table to object memory with OAM DMA.
//
// All hardware access is through the Hardware interface. The package is
// designed for a single execution context: the only suspension point is
// VBlankGate.Wait(), which halts the device until the vblank interrupt
// handler has run.
//
// There are no error returns. Operations have preconditions (tile and object
// index ranges, calling ObjectPipeline.Init() before Transfer(), interrupts
// enabled before VBlankGate.Wait()) and the result of violating them is
// undefined.
package video
