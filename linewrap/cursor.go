// Copyright © 2026 The linefold authors

package linewrap

// mapCursor derives the post-expansion cursor position. When the
// triggering event was an insertion the cursor follows the typed
// character into the rewritten item lines; otherwise it parks at the
// start of the first item line.
func (e *Engine) mapCursor(ch Change, c Construct, body []string) Cursor {
	pad := ch.Indent + e.cfg.ShiftWidth
	first := Cursor{Line: ch.Line + 1, Col: pad + 1}
	if ch.Inserted == "" || len(body) == 0 {
		return first
	}

	// The cursor column relative to the head gives an offset into the
	// flattened item text. Walk the rewritten lines, consuming each
	// item's trimmed length plus one joining separator, until the
	// remaining offset lands inside an item.
	offset := ch.Cursor.Col - len(c.Head)
	if offset < 1 {
		return first
	}
	for i, l := range body {
		n := len(l) - pad - 1 // trimmed item length, sans prefix and comma
		if offset <= n {
			return Cursor{Line: ch.Line + 1 + i, Col: pad + offset}
		}
		offset -= n + 1
	}
	// Offset overran every item: rest on the last item's final character,
	// just before its separator.
	lastLine := body[len(body)-1]
	return Cursor{Line: ch.Line + len(body), Col: len(lastLine) - 1}
}
