package cleanup

import (
	"context"
	"log"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse order of registration and forgets them.
// It stops early if ctx is done.
func CleanUp(ctx context.Context) error {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		j := pending[i]
		log.Printf("Cleanup job %s started...", j.Name)
		err := j.F()
		if err != nil {
			log.Printf("Job finished with error: %v", err)
		} else {
			log.Println("Cleaned")
		}
	}
	return nil
}
