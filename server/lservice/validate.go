package lservice

import (
	"context"
	"errors"

	"golang.org/x/crypto/blake2b"

	"github.com/stevenskevin/lua-2pda/internal/historydb"
	"github.com/stevenskevin/lua-2pda/internal/location"
	"github.com/stevenskevin/lua-2pda/internal/luapda"
	"github.com/stevenskevin/lua-2pda/internal/twopda"
	"github.com/stevenskevin/lua-2pda/server/serr"
)

// ValidationResult is the outcome of recognizing one chunk.
type ValidationResult struct {
	Record historydb.ParseRecord

	// Position is the line/column the chunk was rejected at. Zero value
	// if Record.Accepted is true.
	Position location.Position
}

// Validate runs source through the recognizer, records the outcome in
// persistence, and returns both the stored record and the derived
// line/column position of any failure.
//
// The returned error, if non-nil, indicates a problem with persistence
// and will match serr.ErrDB; a rejected chunk is not itself an error.
func (svc Service) Validate(ctx context.Context, source string) (ValidationResult, error) {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(source))

	rec := historydb.ParseRecord{
		Digest:     h.Sum(nil),
		ByteLength: len(source),
	}
	if !svc.PrivacyDigestOnly {
		rec.Source = source
	}
	var pos location.Position

	err := luapda.Parse([]byte(source), twopda.DebugSilent, nil)
	if err == nil {
		rec.Accepted = true
	} else {
		var pdaErr *twopda.Error
		if errors.As(err, &pdaErr) {
			rec.FailureIndex = pdaErr.Index
			pos = location.Locate([]byte(source), pdaErr.Index)
		}
		rec.FailureMessage = err.Error()
	}

	stored, err := svc.DB.History().Create(ctx, rec)
	if err != nil {
		return ValidationResult{}, serr.WrapDB("could not record validation result", err)
	}

	return ValidationResult{Record: stored, Position: pos}, nil
}
