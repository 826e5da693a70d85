// Example Go code for syntax highlighting preview.
package main

import (
	"fmt"
	"strings"
	"sync"
)

const (
	maxWorkers = 4
	bufferSize = 0x40
	timeout    = 2.5 // seconds
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var usage = `glint [flags] <file>
  -l  language override
  -t  theme name`

type Result struct {
	ID    int
	Value string
	Err   error
}

func worker(id int, jobs <-chan int, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		value := fmt.Sprintf("job-%d\t(worker %d)", job, id)
		results <- Result{ID: job, Value: value}
	}
}

func classify(line string) Level {
	switch {
	case strings.HasPrefix(line, "ERROR"):
		return LevelError
	case strings.HasPrefix(line, "WARN"):
		return LevelWarn
	case strings.Contains(line, "debug"):
		return LevelDebug
	default:
		return LevelInfo
	}
}

func main() {
	jobs := make(chan int, bufferSize)
	results := make(chan Result, bufferSize)

	var wg sync.WaitGroup
	for i := 1; i <= maxWorkers; i++ {
		wg.Add(1)
		go worker(i, jobs, results, &wg)
	}

	for j := 1; j <= 9; j++ {
		jobs <- j
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var count int
	for r := range results {
		if r.Err != nil {
			continue
		}
		count++
		fmt.Printf("%02d: %q\n", r.ID, r.Value)
	}

	fmt.Println(usage)
	fmt.Println("done:", count, classify("WARN: almost out of jobs"), timeout)
}
