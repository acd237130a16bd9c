package fn

import "testing"

func TestInstanceFuncAdapter(t *testing.T) {
	calls := 0
	var inst Instance = InstanceFunc(func(ctx Context) (Outcome, error) {
		calls++
		return Complete, nil
	})
	outcome, err := inst.Body(nil)
	if err != nil {
		t.Fatalf("Body() error = %v, want nil", err)
	}
	if outcome != Complete {
		t.Fatalf("Body() outcome = %v, want Complete", outcome)
	}
	if calls != 1 {
		t.Fatalf("wrapped function called %d times, want 1", calls)
	}
}

func TestGeneratorFuncAdapter(t *testing.T) {
	built := 0
	var gen Generator = GeneratorFunc(func() Instance {
		built++
		return InstanceFunc(func(Context) (Outcome, error) { return Suspended, nil })
	})
	inst1 := gen.NewInstance()
	inst2 := gen.NewInstance()
	if built != 2 {
		t.Fatalf("NewInstance invoked the factory %d times, want 2", built)
	}
	outcome, _ := inst1.Body(nil)
	if outcome != Suspended {
		t.Fatalf("inst1.Body() = %v, want Suspended", outcome)
	}
	_ = inst2
}

func TestOutcomeValues(t *testing.T) {
	if Suspended == Complete {
		t.Fatalf("Suspended and Complete must be distinct values")
	}
}
