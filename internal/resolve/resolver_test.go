package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Layouts(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		fields []string
		want   []string
	}{
		{
			name:   "inline pairs with a missing field",
			lines:  []string{"Invoice Number: INV-2024-001", "Total Amount: 523.10"},
			fields: []string{"Invoice Number", "Total Amount", "Customer Name"},
			want:   []string{"INV-2024-001", "523.10", NotFound},
		},
		{
			name:   "wide gap",
			lines:  []string{"Name          John Smith"},
			fields: []string{"Name"},
			want:   []string{"John Smith"},
		},
		{
			name:   "label above value",
			lines:  []string{"Signature:", "John Smith"},
			fields: []string{"Signature"},
			want:   []string{"John Smith"},
		},
		{
			name:   "abbreviated label stays below threshold",
			lines:  []string{"DOB: 1990-01-01"},
			fields: []string{"Date of Birth"},
			want:   []string{NotFound},
		},
		{
			name:   "trailing punctuation stripped",
			lines:  []string{"Total: 523.10;"},
			fields: []string{"Total"},
			want:   []string{"523.10"},
		},
		{
			name:   "trailing punctuation run stripped",
			lines:  []string{"Total: 523.10,;|"},
			fields: []string{"Total"},
			want:   []string{"523.10"},
		},
		{
			name:   "case and spacing differences",
			lines:  []string{"INVOICE   NUMBER : A-1"},
			fields: []string{"invoice number"},
			want:   []string{"A-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.fields, tt.lines)
			require.Len(t, got, len(tt.fields))

			for i, a := range got {
				assert.Equal(t, tt.fields[i], a.Field)
				assert.Equal(t, tt.want[i], a.Value, "field %q", a.Field)
			}
		})
	}
}

func TestResolve_ThresholdBoundary(t *testing.T) {
	got := Resolve([]string{"Date of Birth", "Invoice Number"}, []string{"DOB: 1990-01-01", "Invoice No: 77"})
	require.Len(t, got, 2)

	assert.Equal(t, NotFound, got[0].Value)
	assert.Equal(t, StrategyNone, got[0].Strategy)
	assert.InDelta(t, 0.0808, got[0].Score, 0.001)

	// 0.425 falls just short of the acceptance threshold.
	assert.Equal(t, NotFound, got[1].Value)
	assert.InDelta(t, 0.425, got[1].Score, 0.001)
}

func TestResolve_Totality(t *testing.T) {
	t.Run("no lines", func(t *testing.T) {
		got := Resolve([]string{"A", "B"}, nil)
		require.Len(t, got, 2)

		for _, a := range got {
			assert.Equal(t, NotFound, a.Value)
			assert.False(t, a.Resolved())
		}
	})

	t.Run("no fields", func(t *testing.T) {
		got := Resolve(nil, []string{"Name: John"})
		assert.Empty(t, got)
	})

	t.Run("order follows fields", func(t *testing.T) {
		lines := []string{"Alpha: 1", "Beta: 2", "Gamma: 3"}
		fields := []string{"Gamma", "Alpha", "Beta"}

		got := Resolve(fields, lines)
		require.Len(t, got, 3)
		assert.Equal(t, "3", got[0].Value)
		assert.Equal(t, "1", got[1].Value)
		assert.Equal(t, "2", got[2].Value)
	})

	t.Run("unresolved fields get the sentinel", func(t *testing.T) {
		lines := []string{"Total: 5", "Name:", "", "Ref -"}
		fields := []string{"Total", "Name", "Ref", "Missing"}

		got := Resolve(fields, lines)
		require.Len(t, got, 4)
		assert.Equal(t, []string{"5", "Ref -", "-", NotFound},
			[]string{got[0].Value, got[1].Value, got[2].Value, got[3].Value})
		assert.False(t, got[3].Resolved())
	})
}

func TestResolveField_CandidateValueStrippedToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "separator run", lines: []string{"Total: ;;"}},
		{name: "mixed run", lines: []string{"Total = |,;"}},
		{name: "later proximity line is not consulted", lines: []string{"Total: ;;", "Total 99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewResolver(tt.lines).ResolveField("Total")

			assert.Equal(t, StrategyCandidate, a.Strategy)
			assert.Empty(t, a.Value)
			assert.Equal(t, "Total", a.Label)
			assert.InDelta(t, 1.0, a.Score, 1e-9)
			assert.True(t, a.Resolved())
		})
	}
}

func TestResolve_DuplicateFields(t *testing.T) {
	got := Resolve([]string{"Name", "Name"}, []string{"Name: John Smith"})
	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
	assert.Equal(t, "John Smith", got[0].Value)
}

func TestResolve_FirstCandidateWinsTies(t *testing.T) {
	got := Resolve([]string{"Name"}, []string{"Name: A", "Name: B"})
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Value)
}

func TestResolve_SharedValue(t *testing.T) {
	got := Resolve([]string{"Customer Name", "Name"}, []string{"Name: John Smith"})
	require.Len(t, got, 2)

	// Fields resolve independently and may bind the same value.
	assert.Equal(t, "John Smith", got[0].Value)
	assert.Equal(t, "John Smith", got[1].Value)
	assert.InDelta(t, 0.6577, got[0].Score, 0.001)
}

func TestResolveField_Candidate(t *testing.T) {
	a := NewResolver([]string{"Invoice Number: INV-1"}).ResolveField("Invoice Number")

	assert.Equal(t, StrategyCandidate, a.Strategy)
	assert.Equal(t, "Invoice Number", a.Label)
	assert.InDelta(t, 1.0, a.Score, 1e-9)
	assert.Zero(t, a.Line)
}

func TestResolveField_Proximity(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		field    string
		want     string
		wantLine int
	}{
		{
			name:     "leader dots",
			lines:    []string{"Header", "Ref No. 12345 issued"},
			field:    "Ref No",
			want:     "12345 issued",
			wantLine: 2,
		},
		{
			name:     "case insensitive",
			lines:    []string{"Ref No. 12345 issued"},
			field:    "REF NO",
			want:     "12345 issued",
			wantLine: 1,
		},
		{
			name:     "metacharacters in the field are literal",
			lines:    []string{"Amount (USD) 12.00"},
			field:    "Amount (USD)",
			want:     "12.00",
			wantLine: 1,
		},
		{
			name:     "field found mid-line",
			lines:    []string{"see Ref No 99"},
			field:    "Ref No",
			want:     "99",
			wantLine: 1,
		},
		{
			name:     "first matching line wins even with a blank capture",
			lines:    []string{"#Ref No   ", "#see Ref No 99"},
			field:    "Ref No",
			want:     "",
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewResolver(tt.lines).ResolveField(tt.field)

			assert.Equal(t, StrategyProximity, a.Strategy)
			assert.Equal(t, tt.want, a.Value)
			assert.Equal(t, tt.wantLine, a.Line)
		})
	}
}

func TestResolveField_Adjacent(t *testing.T) {
	a := NewResolver([]string{"*Remarks", "Paid in full"}).ResolveField("Remarks")

	assert.Equal(t, StrategyAdjacent, a.Strategy)
	assert.Equal(t, "Paid in full", a.Value)
	assert.Equal(t, 2, a.Line)
}

func TestResolveField_AdjacentNeedsNonBlankNextLine(t *testing.T) {
	a := NewResolver([]string{"*Remarks", "   "}).ResolveField("Remarks")

	assert.Equal(t, StrategyNone, a.Strategy)
	assert.Equal(t, NotFound, a.Value)
}

func TestResolveField_OddFieldNames(t *testing.T) {
	lines := []string{"Name: John", "Total: 5"}

	for _, f := range []string{"[x", "(?", `\`, "a+b*", "\xff\xfe", "$^"} {
		assert.NotPanics(t, func() {
			a := NewResolver(lines).ResolveField(f)
			assert.Equal(t, f, a.Field)
			assert.NotEmpty(t, a.Value)
		}, "field %q", f)
	}
}

func TestResolver_Deterministic(t *testing.T) {
	lines := []string{
		"Invoice Number: INV-7",
		"Date          2024-01-02",
		"Bill To:",
		"Acme Corp",
		"Amount Due ..... 42.00",
	}
	fields := []string{"Invoice Number", "Date", "Bill To", "Amount Due", "PO"}

	r := NewResolver(lines)
	first := r.Resolve(fields)

	for range 5 {
		assert.Equal(t, first, r.Resolve(fields))
		assert.Equal(t, first, Resolve(fields, lines))
	}
}

func TestResolver_Accessors(t *testing.T) {
	lines := []string{"Name: John", "Age: 42"}
	r := NewResolver(lines)

	assert.Equal(t, lines, r.Lines())
	assert.Len(t, r.Candidates(), 2)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "None", StrategyNone.String())
	assert.Equal(t, "Candidate", StrategyCandidate.String())
	assert.Equal(t, "Proximity", StrategyProximity.String())
	assert.Equal(t, "Adjacent", StrategyAdjacent.String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
