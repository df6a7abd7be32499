package silo

// testVec and testTag are the component types exercised across this
// package's test files. testVec's Construct hook lets Push/Args tests set
// its fields directly instead of only checking zero values.

type testVec struct {
	Base[testVec]
	X, Y float64
}

func (v *testVec) Construct(args ...any) {
	if len(args) >= 1 {
		v.X, _ = args[0].(float64)
	}
	if len(args) >= 2 {
		v.Y, _ = args[1].(float64)
	}
}

type testTag struct {
	Base[testTag]
	Label string
}

func (t *testTag) Construct(args ...any) {
	if len(args) >= 1 {
		t.Label, _ = args[0].(string)
	}
}

// testHooked records every optional lifecycle hook call it receives, so
// tests can assert the scheme/orchestrator call them in the right order
// and with the right arguments.
type testHooked struct {
	Base[testHooked]
	constructed    bool
	destroyed      bool
	entityPeers    int
	schemeCreated  bool
	schemeInfo     any
}

func (h *testHooked) Construct(args ...any) { h.constructed = true }
func (h *testHooked) Destroy(args ...any)   { h.destroyed = true }
func (h *testHooked) EntityDestroy(peers ...any) { h.entityPeers = len(peers) }
func (h *testHooked) SchemeCreated(m *ComponentsMap) { h.schemeCreated = true }
func (h *testHooked) SchemeInformation(scheme any) { h.schemeInfo = scheme }
