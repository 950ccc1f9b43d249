package desk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okuznetsov/hotel-desk/internal/auth"
	"github.com/okuznetsov/hotel-desk/internal/booking"
	"github.com/okuznetsov/hotel-desk/internal/domain/hotel"
	"github.com/okuznetsov/hotel-desk/internal/logger"
)

// helpText describes the command surface printed by `?`.
const helpText = `commands:
  r <week> <name>  book a room for the given week
  l                list all reservations
  q                list overflow-queued reservations
  ?                print this help
  .                end the session`

// session drives the line-oriented command surface over one login.
// Malformed input is reported on out and never reaches the booking chain.
type session struct {
	// chain is the composed allocation operation.
	chain *booking.Chain
	// scanner reads operator input line by line.
	scanner *bufio.Scanner
	// out receives session output.
	out io.Writer
}

// newSession prepares a session over the provided streams.
func newSession(chain *booking.Chain, in io.Reader, out io.Writer) *session {
	return &session{
		chain:   chain,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// run loops over input lines until `.`, end of input, or context
// cancellation between commands.
func (s *session) run(ctx context.Context) error {
	fmt.Fprintf(s.out, "hotel desk ready: %d rooms, %d weeks; ? for help\n", s.chain.RoomCount(), hotel.WeeksInYear)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, "> ")

		if !s.scanner.Scan() {
			return s.scanner.Err()
		}

		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "r":
			s.book(ctx, fields[1:])
		case "l":
			s.listReservations()
		case "q":
			s.listPending()
		case "?":
			fmt.Fprintln(s.out, helpText)
		case ".":
			fmt.Fprintln(s.out, "session ended")

			return nil
		default:
			fmt.Fprintf(s.out, "unknown command %q; ? for help\n", fields[0])
		}
	}
}

// book validates the arguments and runs one allocation attempt.
func (s *session) book(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: r <week> <name>")

		return
	}

	week, err := strconv.Atoi(args[0])
	if err != nil || week < 0 || week >= hotel.WeeksInYear {
		fmt.Fprintf(s.out, "week must be a number between 0 and %d\n", hotel.WeeksInYear-1)

		return
	}

	result, err := s.chain.Allocate(ctx, week, args[1])

	switch {
	case errors.Is(err, auth.ErrNotAuthorized):
		fmt.Fprintln(s.out, "you are not allowed to book rooms")
	case err != nil:
		logger.ErrorKV(ctx, "Booking attempt failed", "week", week, "occupant", args[1], "error", err)
		fmt.Fprintf(s.out, "booking failed: %v\n", err)
	case result.Queued:
		fmt.Fprintf(s.out, "no room free for week %d; request queued\n", week)
	default:
		fmt.Fprintf(s.out, "booked room %d for week %d (%s)\n", result.Reservation.RoomNumber, week, args[1])
	}
}

// listReservations prints every bound reservation.
func (s *session) listReservations() {
	reservations := s.chain.Reservations()
	if len(reservations) == 0 {
		fmt.Fprintln(s.out, "no reservations yet")

		return
	}

	for _, r := range reservations {
		fmt.Fprintln(s.out, r.String())
	}
}

// listPending prints the overflow queue.
func (s *session) listPending() {
	pending := s.chain.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(s.out, "overflow queue is empty")

		return
	}

	for _, r := range pending {
		fmt.Fprintln(s.out, r.String())
	}
}
