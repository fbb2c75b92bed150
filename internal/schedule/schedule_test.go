package schedule

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var order []string

	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "b") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(time.Second, func() { order = append(order, "c") })

	m.Advance(500 * time.Millisecond)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

func TestManual_StopPreventsCallback(t *testing.T) {
	m := NewManual()
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop() should report true")
	}
	if timer.Stop() {
		t.Error("second Stop() should report false")
	}

	m.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestManual_CallbackScheduledDuringAdvance(t *testing.T) {
	m := NewManual()
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			m.AfterFunc(100*time.Millisecond, again)
		}
	}
	m.AfterFunc(100*time.Millisecond, again)

	m.Advance(250 * time.Millisecond)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	m.Advance(100 * time.Millisecond)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestManual_Now(t *testing.T) {
	m := NewManual()
	m.Advance(1500 * time.Millisecond)
	if m.Now() != 1500*time.Millisecond {
		t.Errorf("Now() = %v, want 1.5s", m.Now())
	}
}

func TestProgram_DeliversFiredMsg(t *testing.T) {
	p := NewProgram()
	msgs := make(chan tea.Msg, 1)
	p.AttachFunc(func(msg tea.Msg) { msgs <- msg })

	ran := false
	p.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case msg := <-msgs:
		fired, ok := msg.(FiredMsg)
		if !ok {
			t.Fatalf("got %T, want FiredMsg", msg)
		}
		fired.Run()
		if !ran {
			t.Error("callback did not run")
		}
		fired.Run()
	case <-time.After(time.Second):
		t.Fatal("timer message not delivered")
	}
}

func TestProgram_StopAfterDeliverySkipsCallback(t *testing.T) {
	p := NewProgram()
	msgs := make(chan tea.Msg, 1)
	p.AttachFunc(func(msg tea.Msg) { msgs <- msg })

	ran := false
	timer := p.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case msg := <-msgs:
		// The message is in flight; stopping now must still suppress it.
		if !timer.Stop() {
			t.Error("Stop() should report true before Run")
		}
		msg.(FiredMsg).Run()
		if ran {
			t.Error("callback ran after Stop")
		}
	case <-time.After(time.Second):
		t.Fatal("timer message not delivered")
	}
}

func TestProgram_DropsWithoutAttach(t *testing.T) {
	p := NewProgram()
	timer := p.AfterFunc(time.Millisecond, func() {})
	time.Sleep(10 * time.Millisecond)
	if !timer.Stop() {
		t.Error("undelivered timer should still be stoppable")
	}
}
