package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration and outcome of a named operation when the returned
// func runs, usually via defer:
//
//	defer obs.Time(ctx, "ned.GetExtinctions")(&err)
func Time(_ context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
