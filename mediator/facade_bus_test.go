package mediator_test

import (
	"context"
	"testing"

	"github.com/next-trace/scg-mediator/mediator"
)

type fCmd struct{ ID string }

func (fCmd) CommandName() string { return "f.cmd" }

type fQry struct{ K string }

func (fQry) QueryName() string { return "f.qry" }

type fRes struct{ V string }

type fEvt struct{ N string }

func (fEvt) EventName() string { return "f.evt" }

func Test_CommandBus_QueryBus_And_AskGeneric(t *testing.T) {
	b := mediator.New(nil)

	// bind command
	_ = b.BindCommandOf("f.cmd", func(ctx context.Context, v any) error { return nil })

	// use CommandBus Dispatch
	cb := mediator.NewCommandBus(b)
	if err := cb.Dispatch(context.Background(), fCmd{ID: "1"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	// bind query and use QueryBus + AskGeneric
	_ = b.BindQueryOf("f.qry", func(ctx context.Context, q any) (any, error) { return fRes{V: q.(fQry).K}, nil })

	qb := mediator.NewQueryBus(b)

	anyRes, err := qb.Ask(context.Background(), fQry{K: "k"})
	if err != nil || anyRes.(fRes).V != "k" {
		t.Fatalf("ask via qb: %v res=%+v", err, anyRes)
	}

	r, err := mediator.AskGeneric[fQry, fRes](context.Background(), qb, fQry{K: "g"})
	if err != nil || r.V != "g" {
		t.Fatalf("ask generic: %v r=%+v", err, r)
	}
}

func Test_EventBus_Facade(t *testing.T) {
	b := mediator.New(nil)

	called := 0
	_ = b.BindEventOf("f.evt", func(ctx context.Context, e any) error { called++; return nil })

	eb := mediator.NewEventBus(b)
	if err := eb.Publish(context.Background(), fEvt{N: "n"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if called != 1 {
		t.Fatalf("want called once, got %d", called)
	}
}
