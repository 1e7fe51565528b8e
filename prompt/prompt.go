// Package prompt collects the room dimensions and spacing from an operator.
//
// Input is read as whitespace-separated tokens, so answers may be given one
// per line or all at once. A malformed number or an unknown unit re-asks the
// same question; end of input aborts with ErrInputClosed.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/seatgrid/distance"
	"github.com/katalvlaran/seatgrid/grid"
)

// ErrInputClosed indicates the operator input ended before all answers were given.
var ErrInputClosed = errors.New("prompt: input closed")

const (
	intro       = "This is a seat arrangement program for COVID-19."
	askRows     = "Enter number of rows: "
	askSeats    = "Enter number of seats: "
	askUnit     = "Let's get the distance between seats and rows.\nFirst, please enter an unit of measurement, 0 for meters, 1 for feet: "
	reaskUnit   = "Invalid input. Please enter an unit of measurement, 0 for meters, 1 for feet: "
	askSeatDist = "Enter the distance between seats: "
	askRowDist  = "Enter the distance between rows: "
	invalid     = "Invalid input. "
)

// Request is the validated operator input.
type Request struct {
	Rows     int
	Cols     int
	Unit     distance.Unit
	SeatDist float64
	RowDist  float64
}

// Validate fails fast on dimensions that cannot form a grid.
func (r Request) Validate() error {
	if r.Rows <= 0 || r.Cols <= 0 {
		return fmt.Errorf("%w: rows=%d seats=%d", grid.ErrInvalidDimensions, r.Rows, r.Cols)
	}
	return nil
}

// Config converts the request's spacing into canonical units.
func (r Request) Config() (distance.Config, error) {
	return distance.FromUnit(r.Unit, r.SeatDist, r.RowDist)
}

// Session asks questions on out and reads answers from in.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession wraps in and out.
func NewSession(in io.Reader, out io.Writer) *Session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Session{in: sc, out: out}
}

// Ask runs the whole dialogue and returns the answers. The request is not
// validated; call Request.Validate before building a grid.
func (s *Session) Ask() (Request, error) {
	var (
		req Request
		err error
	)
	if err = s.say(intro + "\n"); err != nil {
		return req, err
	}
	if req.Rows, err = s.askInt(askRows); err != nil {
		return req, err
	}
	if req.Cols, err = s.askInt(askSeats); err != nil {
		return req, err
	}
	if req.Unit, err = s.askUnit(); err != nil {
		return req, err
	}
	if req.SeatDist, err = s.askFloat(askSeatDist); err != nil {
		return req, err
	}
	if req.RowDist, err = s.askFloat(askRowDist); err != nil {
		return req, err
	}
	return req, nil
}

func (s *Session) askInt(q string) (int, error) {
	tok, err := s.ask(q)
	for err == nil {
		n, perr := strconv.Atoi(tok)
		if perr == nil {
			return n, nil
		}
		tok, err = s.ask(invalid + q)
	}
	return 0, err
}

func (s *Session) askFloat(q string) (float64, error) {
	tok, err := s.ask(q)
	for err == nil {
		f, perr := strconv.ParseFloat(tok, 64)
		if perr == nil {
			return f, nil
		}
		tok, err = s.ask(invalid + q)
	}
	return 0, err
}

// askUnit repeats until the operator picks a valid unit.
func (s *Session) askUnit() (distance.Unit, error) {
	tok, err := s.ask(askUnit)
	for err == nil {
		u, perr := distance.ParseUnit(tok)
		if perr == nil {
			return u, nil
		}
		tok, err = s.ask(reaskUnit)
	}
	return 0, err
}

func (s *Session) ask(q string) (string, error) {
	if err := s.say(q); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("prompt: read answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.in.Text(), nil
}

func (s *Session) say(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("prompt: write question: %w", err)
	}
	return nil
}
