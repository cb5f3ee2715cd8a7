// Command ownkit-go walks through every ownership discipline the library
// models, logging the state transitions as it goes. It exists to make the
// contracts visible: run it, read the trace, and watch the reference count
// move.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ownkit/ownkit-go/pkg/ownkit"
	"github.com/ownkit/ownkit-go/pkg/ownkit/contract"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML scenario file")
	showContracts := flag.Bool("contracts", false, "print the ownership contract tables and exit")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "ownkit-go").Logger()

	logger.Info().Str("version", ownkit.LibraryVersion()).Msg("starting")

	if *showContracts {
		if err := printContracts(os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("contract tables invalid")
		}
		return
	}

	scenario, err := loadScenario(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load scenario")
	}
	if *configPath != "" {
		logger.Info().Str("path", *configPath).Msg("loaded scenario")
	}

	if err := run(logger, scenario); err != nil {
		logger.Fatal().Err(err).Msg("walkthrough failed")
	}
}

func run(logger zerolog.Logger, s Scenario) error {
	before := ownkit.LiveCounted()
	h := ownkit.NewHolder(s.Prefix)

	msg, n := h.AddPrefix("walkthrough")
	logger.Info().Str("message", msg).Int("length", n).Msg("prefix applied")

	// Value discipline: the holder stores a copy, so mutating the original
	// afterward changes nothing inside.
	v := ownkit.NewDatum(s.ValueDatum)
	h.SetValue(v)
	v.Set("mutated after the call")
	logger.Info().
		Str("stored", h.Value().Get()).
		Str("original", v.Get()).
		Msg("pass by value: stored copy unaffected")

	// Exclusive discipline: adopt drains the caller's handle, release drains
	// the holder's slot.
	d := ownkit.NewDatum(s.OwnedDatum)
	o := ownkit.TakeOwnership(&d)
	h.Adopt(&o)
	logger.Info().Bool("caller_handle_empty", o.Empty()).Msg("ownership transferred in")

	back := h.ReleaseOwned()
	logger.Info().
		Bool("holder_slot_empty", h.ReleaseOwned().Empty()).
		Str("datum", back.Release().Get()).
		Msg("ownership transferred back out")

	// Borrowed discipline: the holder observes, the caller stays responsible.
	sh := ownkit.NewDatum(s.SharedDatum)
	h.Share(ownkit.BorrowFrom(&sh))
	sh.Set(s.SharedDatum + " (updated)")
	logger.Info().Str("view", h.SharedView().Ptr().Get()).Msg("borrowed view tracks the live instance")

	// Counted discipline: the holder co-owns, acquire hands out owned
	// references, and the last Unref destroys.
	c := ownkit.NewCounted(s.CountedDatum)
	h.ShareCounted(c)
	logger.Info().Int("refcount", c.RefCount()).Msg("holder became co-owner")

	for i := 0; i < s.CoOwners; i++ {
		got := h.AcquireCounted()
		logger.Info().Int("co_owner", i+1).Int("refcount", got.RefCount()).Msg("acquired owning reference")
		got.Unref()
	}

	// Creator's reference first, then the holder's; the second drop destroys.
	c.Unref()
	h.AdoptCounted(nil)
	logger.Info().Bool("destroyed", c.Destroyed()).Msg("last reference dropped")

	if leaked := ownkit.LiveCounted() - before; leaked != 0 {
		return fmt.Errorf("walkthrough leaked %d counted instance(s)", leaked)
	}
	logger.Info().Msg("no live instances leaked")
	return nil
}

func printContracts(w *os.File) error {
	for _, class := range contract.Classes() {
		if err := class.Validate(); err != nil {
			return err
		}

		fmt.Fprintf(w, "%s", class.Name)
		if class.RefCounted() {
			fmt.Fprintf(w, " (refcounted: %s/%s)", class.IncRef, class.DecRef)
		}
		fmt.Fprintln(w)

		for _, op := range class.Ops {
			fmt.Fprintf(w, "  %s(", op.Name)
			for i, p := range op.Params {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprintf(w, "%s %s %s", p.Name, p.Type, p.Direction)
				if p.Transfer {
					fmt.Fprint(w, " transfer")
				}
			}
			fmt.Fprint(w, ")")
			if op.Result != nil {
				fmt.Fprintf(w, " -> %s", op.Result.Type)
				if op.Result.CallerOwns {
					fmt.Fprint(w, " (caller owns)")
				}
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
	return nil
}
