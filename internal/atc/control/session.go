package control

import (
	"atc-approach/internal/atc/airplane"
	"atc-approach/internal/atc/queue"
	"atc-approach/internal/atc/traffic"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

var (
	ErrEmptyFlightNumber = errors.New("control: flight number is empty")
	ErrNoTraffic         = errors.New("control: no airplanes in the list")
)

const DEFAULT_MAX_MESSAGES = 50

// View is what a front end shows after an operation.
type View struct {
	Listing string
	Message string
	Details string
}

type Options struct {
	Flights     int
	MaxMessages int
	Seed        int64
}

// Session owns the approach queue for one front end. Every operation leaves
// the store as a valid heap.
type Session struct {
	store     *queue.Store
	generator *traffic.Generator
	logger    *log.Logger
	flights   int

	messages    []Message
	maxMessages int
	now         func() time.Time

	view View
}

func NewSession(opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New("control")
	}
	if opts.Flights <= 0 {
		opts.Flights = traffic.DEFAULT_FLIGHTS
	}
	if opts.MaxMessages <= 0 {
		opts.MaxMessages = DEFAULT_MAX_MESSAGES
	}

	return &Session{
		store:       queue.NewStore(),
		generator:   traffic.NewGenerator(opts.Seed, logger),
		logger:      logger,
		flights:     opts.Flights,
		maxMessages: opts.MaxMessages,
		now:         time.Now,
	}
}

// View returns the result of the last successful operation.
func (s *Session) View() View {
	return s.view
}

func (s *Session) Len() int {
	return s.store.BackingSize()
}

func (s *Session) setView(listing, message, details string) View {
	s.view = View{Listing: listing, Message: message, Details: details}
	return s.view
}

// sortedListing sorts for display and rebuilds the heap afterwards.
func (s *Session) sortedListing() string {
	queue.HeapSort(s.store)
	listing := queue.RenderAscending(s.store)
	queue.BuildHeap(s.store)
	s.logger.Debugf("Store back to %s with %d airplanes", s.store.State(), s.store.Size())
	return listing
}

// Generate replaces the list with freshly generated traffic.
func (s *Session) Generate() View {
	s.store.Clear()
	for _, ap := range s.generator.Generate(s.flights) {
		s.store.Append(ap)
	}
	msg := fmt.Sprintf("%d new flights generated", s.flights)
	s.addMessage("", msg, false)
	return s.setView(s.sortedListing(), msg, "")
}

// Add creates an airplane for flight and inserts it.
func (s *Session) Add(flight string) (View, error) {
	if strings.TrimSpace(flight) == "" {
		s.logger.Warn("Add rejected: empty flight number")
		return s.view, ErrEmptyFlightNumber
	}

	queue.BuildHeap(s.store)
	ap := s.generator.CreateAirplane(flight)
	if err := queue.Insert(s.store, ap); err != nil {
		return s.view, err
	}
	s.logger.Infof("Added %s with AC %d", ap.FlightNumber, ap.ApproachCode)

	msg := fmt.Sprintf("%s is added to the list", ap.FlightNumber)
	s.addMessage(ap.FlightNumber, msg, false)
	return s.setView(s.sortedListing(), msg, ""), nil
}

// Peek reports the next airplane to land without removing it.
func (s *Session) Peek() (airplane.Airplane, View, error) {
	if s.store.BackingSize() == 0 {
		return airplane.Airplane{}, s.view, ErrNoTraffic
	}

	queue.BuildHeap(s.store)
	top, err := queue.PeekMax(s.store)
	if err != nil {
		return airplane.Airplane{}, s.view, err
	}

	msg := fmt.Sprintf("The next plane to land is %s with AC - %d", top.FlightNumber, top.ApproachCode)
	details := fmt.Sprintf("Distance: %d m  |  Elevation: %d m", top.Distance, top.Elevation)
	s.addMessage(top.FlightNumber, msg, false)
	return top, s.setView(s.view.Listing, msg, details), nil
}

// Land removes the airplane with the highest approach code.
func (s *Session) Land() (airplane.Airplane, View, error) {
	if s.store.BackingSize() == 0 {
		return airplane.Airplane{}, s.view, ErrNoTraffic
	}

	queue.BuildHeap(s.store)
	top, err := queue.ExtractMax(s.store)
	if err != nil {
		return airplane.Airplane{}, s.view, err
	}
	s.logger.Infof("Landed %s with AC %d, %d remaining", top.FlightNumber, top.ApproachCode, s.store.Size())

	msg := fmt.Sprintf("%s is removed from the list", top.FlightNumber)
	s.addMessage(top.FlightNumber, msg, false)
	return top, s.setView(s.sortedListing(), msg, ""), nil
}

// AssignApproachCode raises the approach code of the airplane at position,
// counted from 1 in heap order (as shown by ViewHeap).
func (s *Session) AssignApproachCode(position, code int) (View, error) {
	if position < 1 || position > s.store.BackingSize() {
		s.logger.Warnf("AC assignment rejected: position %d of %d", position, s.store.BackingSize())
		return s.view, fmt.Errorf("%w: position %d not in [1, %d]", queue.ErrIndexOutOfRange, position, s.store.BackingSize())
	}

	queue.BuildHeap(s.store)
	target, err := s.store.AirplaneAt(position - 1)
	if err != nil {
		return s.view, err
	}
	if err := queue.IncreaseKey(s.store, position-1, code); err != nil {
		if errors.Is(err, queue.ErrPriorityDecrease) {
			msg := "New Approach Code is smaller than current"
			s.logger.Warnf("%s: %v", target.FlightNumber, err)
			s.addMessage(target.FlightNumber, msg, true)
			s.view.Message = msg
			s.view.Details = ""
		}
		return s.view, err
	}
	s.logger.Infof("Assigned AC %d to %s", code, target.FlightNumber)

	msg := "New Approach Code Assigned"
	s.addMessage(target.FlightNumber, msg, false)
	return s.setView(s.sortedListing(), msg, ""), nil
}

// ViewHeap lists the airplanes in heap storage order.
func (s *Session) ViewHeap() View {
	queue.BuildHeap(s.store)
	msg := "List is currently in heap view"
	s.addMessage("", msg, false)
	return s.setView(queue.RenderHeapOrder(s.store), msg, "")
}
