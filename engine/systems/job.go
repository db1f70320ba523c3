package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/pointillist/engine/core"
)

// JobTask is a unit of work for the job system.
type JobTask struct {
	Name string
	// OnStart does the work. Required.
	OnStart func() error
	// OnComplete runs after a successful OnStart. Optional.
	OnComplete func()
	// OnFailure runs with the error returned by OnStart. Optional.
	OnFailure func(err error)
	// OnCompletionCallback always runs last. Optional.
	OnCompletionCallback func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if err := job.OnStart(); err != nil {
		core.LogError("job %q failed: %s", job.Name, err)
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
	} else if job.OnComplete != nil {
		job.OnComplete()
	}

	if job.OnCompletionCallback != nil {
		job.OnCompletionCallback()
	}
}

/**
 * @brief Shuts the job system down, waiting for queued jobs to finish.
 */
func (js *JobSystem) Shutdown() error {
	js.closeOnce.Do(func() {
		close(js.jobQueue)
	})
	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}

// RunAll submits every task and blocks until all of them have finished,
// returning the first error any of them reported.
func (js *JobSystem) RunAll(tasks ...JobTask) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, task := range tasks {
		task := task
		wg.Add(1)
		onFailure := task.OnFailure
		task.OnFailure = func(err error) {
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("job %q: %w", task.Name, err)
			}
			mu.Unlock()
			if onFailure != nil {
				onFailure(err)
			}
		}
		done := task.OnCompletionCallback
		task.OnCompletionCallback = func() {
			if done != nil {
				done()
			}
			wg.Done()
		}
		js.Submit(task)
	}
	wg.Wait()
	return firstErr
}
