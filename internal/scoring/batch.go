package scoring

import (
	"context"

	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/logger"
	"github.com/spigell/resume-relevance/internal/resume"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ScoreDocument validates doc and scores rec against it.
func (e *Engine) ScoreDocument(rec resume.Record, doc jobdesc.Document) (*Result, error) {
	jd, err := jobdesc.Decode(doc)
	if err != nil {
		return nil, err
	}
	return e.Score(rec, jd), nil
}

// ScoreBatch scores rec against every document concurrently. Outcomes keep
// the input order and a failing document only fails its own entry.
func (e *Engine) ScoreBatch(ctx context.Context, rec resume.Record, docs []jobdesc.Document) Outcomes {
	outcomes := make(Outcomes, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Err: err}
				return nil
			}

			result, err := e.ScoreDocument(rec, doc)
			if err != nil {
				e.logger.Warn("scoring job description",
					zap.Int("index", i),
					zap.String("kind", ErrorKind(err)),
					zap.Error(err),
				)
			} else {
				e.logger.Debug("job description scored", logger.ScoreFields(result.Role, result.Candidate, result.TotalScore)...)
			}
			outcomes[i] = Outcome{Result: result, Err: err}
			return nil
		})
	}

	// every task reports through outcomes and never returns an error
	_ = g.Wait()

	e.logger.Debug("batch scored", zap.Int("job_descriptions", len(docs)))

	return outcomes
}
