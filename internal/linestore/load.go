package linestore

import (
	"bufio"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/keystorm-dock/internal/coreerr"
)

// Load reads a document from r, splitting it into lines on CR, LF, and
// CRLF, with one codepoint of lookahead to distinguish a lone CR from the
// CR half of a CRLF pair. Malformed UTF-8 bytes are replaced with U+FFFD;
// each substitution is returned in warnings. A completely empty input
// yields a single empty line with
// EndingNone, matching New.
func Load(r io.Reader) (*Store, []coreerr.EncodingError, error) {
	br := bufio.NewReader(r)
	s := &Store{blockCap: DefaultBlockCapacity}
	b := &block{}
	s.headBlock, s.tailBlock = b, b

	var warnings []coreerr.EncodingError
	var cur []rune
	byteOffset := 0

	// A leading byte-order mark is stripped before line splitting begins.
	// It is run through norm.NFC first: a BOM is only ever the singleton
	// U+FEFF, but normalizing the peeked rune before comparing means a
	// combining-form producer that happened to emit the same codepoint
	// decomposed is still recognized, per the auto-detector's BOM-opaque
	// byte handling note.
	const byteOrderMark = '﻿'
	if first, size, ferr := br.ReadRune(); ferr == nil {
		if normalized := norm.NFC.String(string(first)); normalized == string(rune(byteOrderMark)) {
			byteOffset += size
		} else {
			_ = br.UnreadRune()
		}
	}

	appendLine := func(ending Ending) {
		line := Line{Content: cur, Ending: ending}
		b.append(&lineNode{line: line})
		s.lineCount++
		cur = nil
		if b.count > 2*s.blockCap {
			nb := b.splitInHalf()
			nb.prev = b
			b.next = nb
			s.tailBlock = nb
			b = nb
		}
	}

	for {
		r, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, warnings, coreerr.NewIoError("load", err)
		}
		if r == utf8.RuneError && size == 1 {
			_ = br.UnreadRune()
			bad, _ := br.ReadByte()
			warnings = append(warnings, coreerr.EncodingError{ByteOffset: byteOffset, Replaced: bad})
			cur = append(cur, utf8.RuneError)
			byteOffset++
			continue
		}
		byteOffset += size

		switch r {
		case '\n':
			appendLine(EndingLF)
		case '\r':
			next, nsize, perr := br.ReadRune()
			if perr == nil && next == '\n' {
				byteOffset += nsize
				appendLine(EndingCRLF)
			} else {
				if perr == nil {
					_ = br.UnreadRune()
				}
				appendLine(EndingCR)
			}
		default:
			cur = append(cur, r)
		}
	}

	appendLine(EndingNone)

	s.tailBlock = b
	return s, warnings, nil
}

// DetectEnding returns the dominant line ending among ls's lines, for use
// as the default ending applied to newly split lines. Ties break
// CRLF > LF > CR, matching the platform-conventions resolution recorded for
// this component. A store with no terminated lines (a single EndingNone
// line) reports EndingCRLF.
func DetectEnding(s *Store) Ending {
	var lf, crlf, cr int
	for it := s.Begin(); it.Valid(); it = it.Next() {
		switch it.Line().Ending {
		case EndingLF:
			lf++
		case EndingCRLF:
			crlf++
		case EndingCR:
			cr++
		}
	}
	switch {
	case crlf >= lf && crlf >= cr && crlf > 0:
		return EndingCRLF
	case lf >= cr && lf > 0:
		return EndingLF
	case cr > 0:
		return EndingCR
	default:
		return EndingCRLF
	}
}
