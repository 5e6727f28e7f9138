package hexcrypt

import (
	"context"
	"sync/atomic"

	"github.com/go-i2p/go-hexcrypt/lib/codec"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
)

// Record is one entry of a batch. Encryption reads Value and fills Hex;
// decryption reads Hex and fills Value. Error holds the failure message of the
// last operation on the record and is cleared on success.
type Record struct {
	ID    string `yaml:"id"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
	Hex   string `yaml:"hex"`
	Error string `yaml:"error"`
}

// Batch is the on-disk form of a record list.
type Batch struct {
	Records []Record `yaml:"records"`
}

// BatchStats summarizes a batch run. Records never started because the
// context was cancelled count as Skipped.
type BatchStats struct {
	Succeeded int
	Failed    int
	Skipped   int
}

type recordOp func(e *Engine, r *Record, key, iv string) error

func encryptRecord(e *Engine, r *Record, key, iv string) error {
	kind, err := codec.ParseKind(r.Type)
	if err != nil {
		return err
	}
	v, err := codec.ParseValue(kind, r.Value)
	if err != nil {
		return err
	}
	hexText, err := e.Encrypt(v, key, iv)
	if err != nil {
		return err
	}
	r.Hex = hexText
	return nil
}

func decryptRecord(e *Engine, r *Record, key, iv string) error {
	kind, err := codec.ParseKind(r.Type)
	if err != nil {
		return err
	}
	v, err := e.Decrypt(r.Hex, kind, key, iv)
	if err != nil {
		return err
	}
	r.Value = v.String()
	return nil
}

// EncryptBatch encrypts every record in place under key and iv. Failures are
// stored on the record and do not stop the batch. If ctx is cancelled no
// further records are started and ctx.Err() is returned along with the stats.
func (e *Engine) EncryptBatch(ctx context.Context, records []Record, key, iv string) (BatchStats, error) {
	return e.runBatch(ctx, "encrypt", records, key, iv, encryptRecord)
}

// DecryptBatch is the inverse of EncryptBatch, filling Value from Hex.
func (e *Engine) DecryptBatch(ctx context.Context, records []Record, key, iv string) (BatchStats, error) {
	return e.runBatch(ctx, "decrypt", records, key, iv, decryptRecord)
}

func (e *Engine) runBatch(ctx context.Context, name string, records []Record, key, iv string, op recordOp) (BatchStats, error) {
	log.WithFields(logger.Fields{
		"operation": name,
		"records":   len(records),
		"workers":   e.workers,
	}).Debug("Starting batch")

	var succeeded, failed, started atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range records {
		if gctx.Err() != nil {
			break
		}
		r := &records[i]
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			started.Add(1)
			if err := op(e, r, key, iv); err != nil {
				log.WithError(err).WithField("id", r.ID).Debug("Batch record failed")
				r.Error = err.Error()
				failed.Add(1)
				return nil
			}
			r.Error = ""
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	stats := BatchStats{
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Skipped:   len(records) - int(started.Load()),
	}
	log.WithFields(logger.Fields{
		"operation": name,
		"succeeded": stats.Succeeded,
		"failed":    stats.Failed,
		"skipped":   stats.Skipped,
	}).Debug("Batch finished")

	if err := ctx.Err(); err != nil {
		return stats, oops.Wrapf(err, "%s batch interrupted", name)
	}
	return stats, nil
}
