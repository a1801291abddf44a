// Package terminal runs an interactive remote shell over an abstract
// [Channel].
//
// A [Session] owns one channel. A background reader is the only caller of
// Channel.Read: it polls Ready, decodes chunks as UTF-8, strips CSI escape
// sequences and hands the text to an [OutputSink]. The caller side submits
// commands, walks the command [History] and shuts the session down. Only
// writes are serialised; reads and writes never share a lock.
package terminal
