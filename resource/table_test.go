package resource

import (
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestUnifiedTable_Basic(t *testing.T) {
	table := NewTable()

	// Insert
	h := table.Insert(KindSwapchain, 0, "test")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	// Get
	val, ok := table.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	// GetKind with correct kind
	if _, ok = table.GetKind(h, KindSwapchain); !ok {
		t.Fatal("GetKind with correct kind failed")
	}

	// GetKind with wrong kind
	if _, ok = table.GetKind(h, KindSpace); ok {
		t.Fatal("GetKind with wrong kind should fail")
	}

	// Remove
	val, ok = table.Remove(h)
	if !ok {
		t.Fatal("Remove failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	// Len should be 0
	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestUnifiedTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	// Insert should trigger EventCreated
	h := table.Insert(KindAction, 0, "test")
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated {
		t.Fatal("Expected EventCreated")
	}
	if obs.events[0].Handle != h || obs.events[0].Kind != KindAction {
		t.Fatal("Wrong handle or kind in event")
	}

	// Remove should trigger EventDropped
	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDropped {
		t.Fatal("Expected EventDropped")
	}

	// Removing again must not notify
	table.Remove(h)
	if len(obs.events) != 2 {
		t.Fatal("Double remove should not notify")
	}

	// Unsubscribe
	table.Unsubscribe(obs)
	table.Insert(KindAction, 0, "test2")
	if len(obs.events) != 2 {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestUnifiedTable_CascadingRemove(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}

	inst := table.Insert(KindInstance, 0, "inst")
	sess := table.Insert(KindSession, inst, "sess")
	space := table.Insert(KindSpace, sess, "space")
	set := table.Insert(KindActionSet, inst, "set")
	table.Subscribe(obs)

	table.Remove(inst)

	if table.Len() != 0 {
		t.Fatalf("Expected empty table, got %d", table.Len())
	}

	want := []Handle{space, sess, set, inst}
	if len(obs.events) != len(want) {
		t.Fatalf("Expected %d drop events, got %d", len(want), len(obs.events))
	}
	for i, h := range want {
		if obs.events[i].Handle != h || obs.events[i].Type != EventDropped {
			t.Errorf("event %d = %+v, want drop of %d", i, obs.events[i], h)
		}
	}
	if obs.events[0].Parent != sess {
		t.Errorf("space parent = %d, want %d", obs.events[0].Parent, sess)
	}
}

func TestUnifiedTable_Clear(t *testing.T) {
	table := NewTable()

	inst := table.Insert(KindInstance, 0, "a")
	table.Insert(KindSession, inst, "b")
	table.Insert(KindInstance, 0, "c")

	if table.Len() != 3 {
		t.Fatal("Expected Len() == 3")
	}

	table.Clear()

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Clear")
	}
}

func TestUnifiedTable_Close(t *testing.T) {
	table := NewTable()

	table.Insert(KindInstance, 0, "a")
	table.Insert(KindInstance, 0, "b")

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Insert should fail after Close
	if h := table.Insert(KindInstance, 0, "c"); h != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestUnifiedTable_DropperInterface(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	h := table.Insert(KindPassthrough, 0, d)
	table.Remove(h)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}

func TestCounter(t *testing.T) {
	table := NewTable()
	c := NewCounter()
	table.Subscribe(c)

	inst := table.Insert(KindInstance, 0, nil)
	table.Insert(KindSwapchain, inst, nil)
	sc := table.Insert(KindSwapchain, inst, nil)
	table.Remove(sc)

	if c.Created(KindSwapchain) != 2 {
		t.Fatalf("Created = %d, want 2", c.Created(KindSwapchain))
	}
	if c.Dropped(KindSwapchain) != 1 {
		t.Fatalf("Dropped = %d, want 1", c.Dropped(KindSwapchain))
	}

	table.Remove(inst)
	if c.Live(KindSwapchain) != 0 || c.Live(KindInstance) != 0 {
		t.Fatal("Expected nothing live after removing the owner")
	}
}

func TestTyped(t *testing.T) {
	table := NewTable()
	spaces := NewTyped[string](table, KindSpace)

	h := spaces.Insert(0, "stage")
	other := table.Insert(KindSwapchain, 0, "not a space")

	if v, ok := spaces.Get(h); !ok || v != "stage" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	if _, ok := spaces.Get(other); ok {
		t.Fatal("Typed view must reject other kinds")
	}
	if _, ok := spaces.Remove(other); ok {
		t.Fatal("Typed Remove must reject other kinds")
	}

	spaces.Insert(0, "local")
	if spaces.Len() != 2 {
		t.Fatalf("Len = %d, want 2", spaces.Len())
	}

	var names []string
	spaces.Each(func(_ Handle, v string) bool {
		names = append(names, v)
		return true
	})
	if len(names) != 2 || names[0] != "stage" || names[1] != "local" {
		t.Fatalf("Each = %v", names)
	}

	if v, ok := spaces.Remove(h); !ok || v != "stage" {
		t.Fatalf("Remove = %q, %v", v, ok)
	}
}

func TestKindString(t *testing.T) {
	if KindPassthroughLayer.String() != "passthrough_layer" {
		t.Errorf("got %q", KindPassthroughLayer.String())
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("got %q", Kind(200).String())
	}
}
