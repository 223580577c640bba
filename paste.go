package tea

// PasteMsg is sent when a terminal delivers pasted text via bracketed
// paste.
type PasteMsg string

// PasteStartMsg marks a terminal entering bracketed-paste mode. The input
// decoder does not emit it: a paste arrives as a single PasteMsg.
type PasteStartMsg struct{}

// PasteEndMsg marks a terminal leaving bracketed-paste mode. The input
// decoder does not emit it: a paste arrives as a single PasteMsg.
type PasteEndMsg struct{}
