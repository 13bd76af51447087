package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

// ExitMsg is written to the collector's writer when Run returns.
const ExitMsg = "stats • exited"

// Step describes the outcome of one scenario step.
type Step struct {
	RunID    string
	Index    int
	Op       string
	Size     int // list size after the step
	Err      string
	Duration time.Duration
}

// Header lists the CSV columns written by WriteCSV.
var Header = []string{"run ID", "step", "op", "size", "latency (ns)", "error"}

// Collector aggregates the steps pushed through StepChan until DoneChan is
// closed.
type Collector struct {
	StepChan chan Step
	Writer   io.Writer     // Used for logging.
	DoneChan chan struct{} // An external kill switch.

	mu    sync.Mutex
	steps []Step
}

// New returns a collector whose step channel holds up to bufferLen pending
// steps.
func New(bufferLen int, writer io.Writer, donec chan struct{}) *Collector {
	return &Collector{
		StepChan: make(chan Step, bufferLen),
		Writer:   writer,
		DoneChan: donec,
	}
}

// Record queues a step for aggregation.
func (c *Collector) Record(s Step) {
	c.StepChan <- s
}

// Run aggregates steps until DoneChan closes. Steps still buffered at that
// point are drained before Run returns.
func (c *Collector) Run() {
	defer fmt.Fprintln(c.Writer, ExitMsg)

	for {
		select {
		case s := <-c.StepChan:
			c.add(s)
		case <-c.DoneChan:
			for {
				select {
				case s := <-c.StepChan:
					c.add(s)
				default:
					return
				}
			}
		}
	}
}

func (c *Collector) add(s Step) {
	c.mu.Lock()
	c.steps = append(c.steps, s)
	c.mu.Unlock()
}

// Steps returns a copy of the steps aggregated so far.
func (c *Collector) Steps() []Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Step(nil), c.steps...)
}

// WriteCSV writes the header followed by one row per step.
func WriteCSV(w io.Writer, steps []Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range steps {
		row := []string{
			s.RunID,
			fmt.Sprintf("%06d", s.Index),
			s.Op,
			strconv.Itoa(s.Size),
			strconv.FormatInt(s.Duration.Nanoseconds(), 10),
			s.Err,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
