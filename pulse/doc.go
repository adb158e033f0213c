// Package pulse synthesizes single stimulus pulses.
//
// A Simple pulse is a square wave, optionally shattered by a faster carrier
// so that its high phase becomes a burst. A Noise pulse is a carrier whose
// duty is redrawn at random for every chip of fixed length. Both are padded
// with silent onset and offset segments.
//
// Alternative parameterizations are sum types rather than flags: the shape
// of a Simple pulse is either Duty or Values, and the extent of any pulse is
// either a Length or a number of Repeats.
package pulse
