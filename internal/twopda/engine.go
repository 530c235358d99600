package twopda

// DebugLevel controls how much tracing Run emits via a Tracer. Level 0
// is silent; higher levels add more detail, per the external debug
// interface.
type DebugLevel int

const (
	DebugSilent DebugLevel = 0
	DebugBytes  DebugLevel = 1
	DebugTrans  DebugLevel = 2
	DebugStack  DebugLevel = 3
)

// Tracer receives a line of trace output for each step taken by Run when
// the requested DebugLevel calls for it. Implementations typically wrap
// log.Logger or testing.T.Logf.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

// Instance is one in-flight run of a Definition over an input buffer. It
// owns its own state/stack/cursor so many Instances can run concurrently
// against the same read-only Definition.
type Instance struct {
	def    *Definition
	input  []byte
	state  string
	stack  []string
	cursor int

	debug  DebugLevel
	tracer Tracer
	steps  int
	// maxStayRun bounds consecutive Stay transitions at a fixed cursor
	// position, guarding against a malformed or buggy table looping
	// forever without ever consuming input.
	maxStayRun int

	// eofConsumed is set once an end-of-input transition chain has run to
	// completion (see stepEOF), so that Done reports true and Run stops
	// asking for further steps.
	eofConsumed bool
}

// New creates an Instance ready to run def over input starting at def's
// initial state with an empty stack.
func New(def *Definition, input []byte) *Instance {
	return &Instance{
		def:        def,
		input:      input,
		state:      def.Initial(),
		maxStayRun: 0,
	}
}

// SetDebug attaches a Tracer and the level of detail it should receive.
// Passing a nil tracer with a nonzero level is a no-op (nothing is
// traced).
func (in *Instance) SetDebug(level DebugLevel, tracer Tracer) {
	in.debug = level
	in.tracer = tracer
}

// top returns the current stack top, or Wildcard's underlying empty
// string if the stack is empty (which is exactly the value that matches
// only a Wildcard lookup, not a specific empty-string stack symbol --
// builders must never push "" as a real stack value).
func (in *Instance) top() string {
	if len(in.stack) == 0 {
		return Wildcard
	}
	return in.stack[len(in.stack)-1]
}

func (in *Instance) stackSnapshot() []string {
	out := make([]string, len(in.stack))
	copy(out, in.stack)
	return out
}

// Step performs a single transition. It returns (true, nil) if a step
// was taken, (false, nil) if the automaton has nothing further to do at
// end-of-input (only possible before the caller checks this via Done),
// or (false, err) on a no-transition or invariant failure.
func (in *Instance) Step() (bool, error) {
	if in.cursor >= len(in.input) {
		return in.stepEOF()
	}

	b := in.input[in.cursor]
	top := in.top()

	t, ok := in.def.lookup(in.state, b, top)
	if !ok {
		return false, &Error{
			Index: in.cursor,
			State: in.state,
			Stack: in.stackSnapshot(),
			Byte:  b,
		}
	}

	if in.debug >= DebugTrans && in.tracer != nil {
		in.tracer.Tracef("%q @%d state=%s top=%q -> state=%s dir=%s op=%s val=%q",
			b, in.cursor, in.state, top, t.Next, t.Dir, t.Op, t.Value)
	} else if in.debug >= DebugBytes && in.tracer != nil {
		in.tracer.Tracef("%q @%d", b, in.cursor)
	}

	switch t.Op {
	case Read:
		// no-op
	case Push:
		in.stack = append(in.stack, t.Value)
	case Pop:
		if len(in.stack) == 0 {
			return false, &Error{Index: in.cursor, State: in.state, Stack: nil, Byte: b}
		}
		in.stack = in.stack[:len(in.stack)-1]
	case Replace:
		if len(in.stack) == 0 {
			return false, &Error{Index: in.cursor, State: in.state, Stack: nil, Byte: b}
		}
		in.stack[len(in.stack)-1] = t.Value
	default:
		return false, &InvariantError{State: in.state, Op: t.Op}
	}

	in.state = t.Next

	if t.Dir == Right {
		in.cursor++
	}

	if in.debug >= DebugStack && in.tracer != nil {
		in.tracer.Tracef("  stack=%v", in.stack)
	}

	return true, nil
}

// stepEOF handles the cursor already sitting at end-of-input. A
// Definition that never calls AddEOFTransition keeps the plain behavior
// of accepting as soon as the input is exhausted. One that does use it
// must wire every state that is a legal place to stop; reaching
// end-of-input anywhere else is a rejection, and reaching it at a state
// wired with a Stay transition chains into another end-of-input lookup
// from the new state without consuming anything, exactly like a run of
// Stay transitions over a real byte.
func (in *Instance) stepEOF() (bool, error) {
	if in.eofConsumed {
		return false, nil
	}

	top := in.top()
	t, ok := in.def.lookupEOF(in.state, top)
	if !ok {
		if len(in.def.eof) == 0 {
			in.eofConsumed = true
			return false, nil
		}
		return false, &Error{
			Index: in.cursor,
			State: in.state,
			Stack: in.stackSnapshot(),
			EOF:   true,
		}
	}

	if in.debug >= DebugTrans && in.tracer != nil {
		in.tracer.Tracef("EOF @%d state=%s top=%q -> state=%s dir=%s op=%s val=%q",
			in.cursor, in.state, top, t.Next, t.Dir, t.Op, t.Value)
	}

	switch t.Op {
	case Read:
		// no-op
	case Push:
		in.stack = append(in.stack, t.Value)
	case Pop:
		if len(in.stack) == 0 {
			return false, &Error{Index: in.cursor, State: in.state, Stack: nil, EOF: true}
		}
		in.stack = in.stack[:len(in.stack)-1]
	case Replace:
		if len(in.stack) == 0 {
			return false, &Error{Index: in.cursor, State: in.state, Stack: nil, EOF: true}
		}
		in.stack[len(in.stack)-1] = t.Value
	default:
		return false, &InvariantError{State: in.state, Op: t.Op}
	}

	in.state = t.Next
	if t.Dir == Right {
		in.eofConsumed = true
	}

	if in.debug >= DebugStack && in.tracer != nil {
		in.tracer.Tracef("  stack=%v", in.stack)
	}

	return true, nil
}

// Done reports whether the cursor has reached end-of-input and, if the
// Definition uses explicit end-of-input transitions, whether that chain
// has finished running.
func (in *Instance) Done() bool {
	if in.cursor < len(in.input) {
		return false
	}
	return in.eofConsumed || len(in.def.eof) == 0
}

// State returns the instance's current control state.
func (in *Instance) State() string { return in.state }

// Run drives the Instance to completion: it steps until end-of-input is
// reached with no transition failure, or until a lookup fails. Run
// enforces a bound on consecutive Stay transitions at the same cursor
// position (product of state count and stack-symbol count, per the
// cursor-monotonicity invariant) to guard against a malformed table
// looping forever.
func (in *Instance) Run() error {
	stats := in.def.Stats()
	bound := (stats.States + 1) * (stats.StackSymbs + 1)
	if bound < 64 {
		bound = 64
	}

	lastCursor := in.cursor
	stayRun := 0

	for !in.Done() {
		advanced, err := in.Step()
		if err != nil {
			return err
		}
		if !advanced {
			break
		}
		if in.cursor == lastCursor {
			stayRun++
			if stayRun > bound {
				atEOF := in.cursor >= len(in.input)
				var b byte
				if !atEOF {
					b = in.input[in.cursor]
				}
				return &Error{
					Index: in.cursor,
					State: in.state,
					Stack: in.stackSnapshot(),
					Byte:  b,
					EOF:   atEOF,
				}
			}
		} else {
			stayRun = 0
			lastCursor = in.cursor
		}
	}

	return nil
}

// Parse is the top-level entry point: build a fresh Instance over input
// against def, run it to completion, and report ok/error. debugLevel and
// tracer are optional (pass DebugSilent, nil for silent operation).
func Parse(def *Definition, input []byte, debugLevel DebugLevel, tracer Tracer) error {
	in := New(def, input)
	in.SetDebug(debugLevel, tracer)
	return in.Run()
}
