package lservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stevenskevin/lua-2pda/internal/historydb"
	"github.com/stevenskevin/lua-2pda/server/serr"
)

// History returns previously-recorded validation results, most recent
// first, optionally bounded by notBefore/notAfter.
func (svc Service) History(ctx context.Context, notBefore, notAfter *time.Time) ([]historydb.ParseRecord, error) {
	recs, err := svc.DB.History().GetAll(ctx, notBefore, notAfter)
	if err != nil {
		return nil, serr.WrapDB("could not retrieve history", err)
	}
	return recs, nil
}

// HistoryByID returns a single previously-recorded validation result.
//
// The returned error, if non-nil, will match serr.ErrNotFound if no
// record with that ID exists, or serr.ErrDB for any other persistence
// problem.
func (svc Service) HistoryByID(ctx context.Context, id uuid.UUID) (historydb.ParseRecord, error) {
	rec, err := svc.DB.History().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, historydb.ErrNotFound) {
			return historydb.ParseRecord{}, serr.New("", serr.ErrNotFound)
		}
		return historydb.ParseRecord{}, serr.WrapDB("could not retrieve history record", err)
	}
	return rec, nil
}
