// Maximum-weight matching on general graphs.
//
// maxWeightMatching implements Edmonds' blossom algorithm with Galil's
// primal-dual bookkeeping in O(n³). With maxCardinality set it returns a
// maximum-weight matching among the maximum-cardinality matchings, which on
// a complete graph with an even vertex count is a perfect matching.
//
// Representation (all slices indexed by vertex, blossom or endpoint id):
//   - Edge k has endpoints 2k (edges[k].i) and 2k+1 (edges[k].j).
//   - Vertices are 0..n-1, non-trivial blossoms n..2n-1.
//   - label: 0 free, 1 S (outer), 2 T (inner); 5 is a temporary scan mark.
//   - dualvar holds twice the vertex duals for vertices and the blossom
//     duals for blossoms, so slack(k) = dual[i] + dual[j] - 2·w(k).
//
// Weights are expected to be integral (held in float64) so that every dual
// update stays exact; callers quantize real distances first.
//
// Determinism: no maps, fixed loop orders.

package tsp

// blossomEdge is a weighted edge for the matching engine.
type blossomEdge struct {
	i, j int
	w    float64
}

// blossomMatcher holds the full engine state for one maxWeightMatching call.
type blossomMatcher struct {
	n              int
	edges          []blossomEdge
	maxCardinality bool

	endpoint  []int   // endpoint p → vertex
	neighbend [][]int // vertex → remote endpoints of incident edges

	mate     []int // vertex → remote endpoint of its matched edge, or -1
	label    []int
	labelend []int // endpoint through which a vertex/blossom got its label

	inblossom        []int   // vertex → top-level blossom
	blossomparent    []int   // blossom → parent blossom, or -1
	blossomchilds    [][]int // blossom → sub-blossoms in cycle order
	blossombase      []int   // blossom → base vertex, -1 if unused
	blossomendps     [][]int // blossom → endpoints linking consecutive childs
	bestedge         []int   // least-slack edge to an S-blossom, or -1
	blossombestedges [][]int // nil means "not computed"
	unusedblossoms   []int

	dualvar   []float64
	allowedge []bool // edge has zero slack (tight)
	queue     []int  // S-vertices to scan
}

// maxWeightMatching returns mate, where mate[v] is the vertex matched to v or
// -1 when v stays single.
//
// Complexity: O(n³) time, O(n + E) space.
func maxWeightMatching(n int, edges []blossomEdge, maxCardinality bool) []int {
	mate := make([]int, n)
	for v := range mate {
		mate[v] = -1
	}
	if len(edges) == 0 {
		return mate
	}

	m := newBlossomMatcher(n, edges, maxCardinality)
	m.run()

	for v := 0; v < n; v++ {
		if m.mate[v] >= 0 {
			mate[v] = m.endpoint[m.mate[v]]
		}
	}

	return mate
}

func newBlossomMatcher(n int, edges []blossomEdge, maxCardinality bool) *blossomMatcher {
	nedge := len(edges)
	m := &blossomMatcher{n: n, edges: edges, maxCardinality: maxCardinality}

	var maxweight float64
	for _, e := range edges {
		if e.w > maxweight {
			maxweight = e.w
		}
	}

	m.endpoint = make([]int, 2*nedge)
	m.neighbend = make([][]int, n)
	for k, e := range edges {
		m.endpoint[2*k] = e.i
		m.endpoint[2*k+1] = e.j
		m.neighbend[e.i] = append(m.neighbend[e.i], 2*k+1)
		m.neighbend[e.j] = append(m.neighbend[e.j], 2*k)
	}

	m.mate = filled(n, -1)
	m.label = make([]int, 2*n)
	m.labelend = filled(2*n, -1)
	m.inblossom = make([]int, n)
	m.blossomparent = filled(2*n, -1)
	m.blossomchilds = make([][]int, 2*n)
	m.blossombase = filled(2*n, -1)
	m.blossomendps = make([][]int, 2*n)
	m.bestedge = filled(2*n, -1)
	m.blossombestedges = make([][]int, 2*n)
	m.unusedblossoms = make([]int, 0, n)
	m.dualvar = make([]float64, 2*n)
	m.allowedge = make([]bool, nedge)

	for v := 0; v < n; v++ {
		m.inblossom[v] = v
		m.blossombase[v] = v
		m.dualvar[v] = maxweight
		m.unusedblossoms = append(m.unusedblossoms, n+v)
	}

	return m
}

// filled returns a slice of length n with every element set to x.
func filled(n, x int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = x
	}

	return s
}

// wrap maps a possibly negative cyclic index into [0, L).
func wrap(j, L int) int {
	j %= L
	if j < 0 {
		j += L
	}

	return j
}

// indexOf returns the position of x in s, or -1.
func indexOf(s []int, x int) int {
	for i, y := range s {
		if y == x {
			return i
		}
	}

	return -1
}

func (m *blossomMatcher) slack(k int) float64 {
	e := m.edges[k]

	return m.dualvar[e.i] + m.dualvar[e.j] - 2*e.w
}

// leaves returns the vertices contained in blossom b (b itself if b < n).
func (m *blossomMatcher) leaves(b int) []int {
	if b < m.n {
		return []int{b}
	}
	var out []int
	for _, t := range m.blossomchilds[b] {
		if t < m.n {
			out = append(out, t)
		} else {
			out = append(out, m.leaves(t)...)
		}
	}

	return out
}

// assignLabel labels the top-level blossom of w with t (1=S, 2=T), reached
// through endpoint p. A T-blossom immediately labels its mate S.
func (m *blossomMatcher) assignLabel(w, t, p int) {
	b := m.inblossom[w]
	m.label[w], m.label[b] = t, t
	m.labelend[w], m.labelend[b] = p, p
	m.bestedge[w], m.bestedge[b] = -1, -1
	if t == 1 {
		m.queue = append(m.queue, m.leaves(b)...)
		return
	}
	base := m.blossombase[b]
	m.assignLabel(m.endpoint[m.mate[base]], 1, m.mate[base]^1)
}

// scanBlossom traces back from S-vertices v and w to find either a new
// blossom (returns its base) or an augmenting path (returns -1).
func (m *blossomMatcher) scanBlossom(v, w int) int {
	var path []int
	base := -1
	for v != -1 || w != -1 {
		b := m.inblossom[v]
		if m.label[b]&4 != 0 {
			base = m.blossombase[b]
			break
		}
		path = append(path, b)
		m.label[b] = 5
		if m.labelend[b] == -1 {
			// root of the alternating tree
			v = -1
		} else {
			v = m.endpoint[m.labelend[b]]
			b = m.inblossom[v]
			v = m.endpoint[m.labelend[b]]
		}
		if w != -1 {
			v, w = w, v
		}
	}
	for _, b := range path {
		m.label[b] = 1
	}

	return base
}

// addBlossom contracts the odd cycle closed by edge k into a new S-blossom
// with the given base.
func (m *blossomMatcher) addBlossom(base, k int) {
	v, w := m.edges[k].i, m.edges[k].j
	bb := m.inblossom[base]
	bv := m.inblossom[v]
	bw := m.inblossom[w]

	b := m.unusedblossoms[len(m.unusedblossoms)-1]
	m.unusedblossoms = m.unusedblossoms[:len(m.unusedblossoms)-1]
	m.blossombase[b] = base
	m.blossomparent[b] = -1
	m.blossomparent[bb] = b

	var path, endps []int
	// Trace back from v to base.
	for bv != bb {
		m.blossomparent[bv] = b
		path = append(path, bv)
		endps = append(endps, m.labelend[bv])
		v = m.endpoint[m.labelend[bv]]
		bv = m.inblossom[v]
	}
	path = append(path, bb)
	reverseInts(path)
	reverseInts(endps)
	endps = append(endps, 2*k)
	// Trace back from w to base.
	for bw != bb {
		m.blossomparent[bw] = b
		path = append(path, bw)
		endps = append(endps, m.labelend[bw]^1)
		w = m.endpoint[m.labelend[bw]]
		bw = m.inblossom[w]
	}
	m.blossomchilds[b] = path
	m.blossomendps[b] = endps

	m.label[b] = 1
	m.labelend[b] = m.labelend[bb]
	m.dualvar[b] = 0
	for _, lv := range m.leaves(b) {
		if m.label[m.inblossom[lv]] == 2 {
			// former T-vertices become S-vertices
			m.queue = append(m.queue, lv)
		}
		m.inblossom[lv] = b
	}

	// Compute the least-slack edges from b to every other S-blossom.
	bestedgeto := filled(2*m.n, -1)
	for _, sub := range path {
		var nblists [][]int
		if m.blossombestedges[sub] == nil {
			for _, lv := range m.leaves(sub) {
				ks := make([]int, len(m.neighbend[lv]))
				for x, p := range m.neighbend[lv] {
					ks[x] = p / 2
				}
				nblists = append(nblists, ks)
			}
		} else {
			nblists = [][]int{m.blossombestedges[sub]}
		}
		for _, nblist := range nblists {
			for _, ek := range nblist {
				j := m.edges[ek].j
				if m.inblossom[j] == b {
					j = m.edges[ek].i
				}
				bj := m.inblossom[j]
				if bj != b && m.label[bj] == 1 &&
					(bestedgeto[bj] == -1 || m.slack(ek) < m.slack(bestedgeto[bj])) {
					bestedgeto[bj] = ek
				}
			}
		}
		m.blossombestedges[sub] = nil
		m.bestedge[sub] = -1
	}
	best := make([]int, 0, len(bestedgeto))
	for _, ek := range bestedgeto {
		if ek != -1 {
			best = append(best, ek)
		}
	}
	m.blossombestedges[b] = best
	m.bestedge[b] = -1
	for _, ek := range best {
		if m.bestedge[b] == -1 || m.slack(ek) < m.slack(m.bestedge[b]) {
			m.bestedge[b] = ek
		}
	}
}

// expandBlossom dissolves blossom b. Mid-stage (endstage=false) a T-blossom's
// children are relabelled so the alternating tree stays consistent.
func (m *blossomMatcher) expandBlossom(b int, endstage bool) {
	for _, s := range m.blossomchilds[b] {
		m.blossomparent[s] = -1
		switch {
		case s < m.n:
			m.inblossom[s] = s
		case endstage && m.dualvar[s] == 0:
			m.expandBlossom(s, endstage)
		default:
			for _, lv := range m.leaves(s) {
				m.inblossom[lv] = s
			}
		}
	}

	if !endstage && m.label[b] == 2 {
		childs := m.blossomchilds[b]
		endps := m.blossomendps[b]
		L := len(childs)

		entrychild := m.inblossom[m.endpoint[m.labelend[b]^1]]
		j := indexOf(childs, entrychild)
		var jstep, endptrick int
		if j&1 != 0 {
			// odd position: walk forward around the cycle
			j -= L
			jstep, endptrick = 1, 0
		} else {
			jstep, endptrick = -1, 1
		}

		// Relabel the even-length path from the entry child to the base.
		p := m.labelend[b]
		for j != 0 {
			m.label[m.endpoint[p^1]] = 0
			m.label[m.endpoint[endps[wrap(j-endptrick, L)]^endptrick^1]] = 0
			m.assignLabel(m.endpoint[p^1], 2, p)
			m.allowedge[endps[wrap(j-endptrick, L)]/2] = true
			j += jstep
			p = endps[wrap(j-endptrick, L)] ^ endptrick
			m.allowedge[p/2] = true
			j += jstep
		}

		// The base child becomes a T-blossom without relabelling its mate.
		bv := childs[wrap(j, L)]
		m.label[m.endpoint[p^1]], m.label[bv] = 2, 2
		m.labelend[m.endpoint[p^1]], m.labelend[bv] = p, p
		m.bestedge[bv] = -1

		// Children on the odd path keep or lose labels depending on reach.
		j += jstep
		for childs[wrap(j, L)] != entrychild {
			bv = childs[wrap(j, L)]
			if m.label[bv] == 1 {
				j += jstep
				continue
			}
			for _, lv := range m.leaves(bv) {
				if m.label[lv] != 0 {
					m.label[lv] = 0
					m.label[m.endpoint[m.mate[m.blossombase[bv]]]] = 0
					m.assignLabel(lv, 2, m.labelend[lv])
					break
				}
			}
			j += jstep
		}
	}

	m.label[b], m.labelend[b] = -1, -1
	m.blossomchilds[b], m.blossomendps[b] = nil, nil
	m.blossombase[b] = -1
	m.blossombestedges[b] = nil
	m.bestedge[b] = -1
	m.unusedblossoms = append(m.unusedblossoms, b)
}

// augmentBlossom swaps matched/unmatched edges along the even path inside
// blossom b from vertex v to the base, making v the new base.
func (m *blossomMatcher) augmentBlossom(b, v int) {
	t := v
	for m.blossomparent[t] != b {
		t = m.blossomparent[t]
	}
	if t >= m.n {
		m.augmentBlossom(t, v)
	}

	childs := m.blossomchilds[b]
	endps := m.blossomendps[b]
	L := len(childs)
	i := indexOf(childs, t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= L
		jstep, endptrick = 1, 0
	} else {
		jstep, endptrick = -1, 1
	}

	for j != 0 {
		j += jstep
		t = childs[wrap(j, L)]
		p := endps[wrap(j-endptrick, L)] ^ endptrick
		if t >= m.n {
			m.augmentBlossom(t, m.endpoint[p])
		}
		j += jstep
		t = childs[wrap(j, L)]
		if t >= m.n {
			m.augmentBlossom(t, m.endpoint[p^1])
		}
		m.mate[m.endpoint[p]] = p ^ 1
		m.mate[m.endpoint[p^1]] = p
	}

	// Rotate so the new base child comes first.
	m.blossomchilds[b] = append(append([]int{}, childs[i:]...), childs[:i]...)
	m.blossomendps[b] = append(append([]int{}, endps[i:]...), endps[:i]...)
	m.blossombase[b] = m.blossombase[m.blossomchilds[b][0]]
}

// augmentMatching flips the augmenting path through edge k, growing the
// matching by one edge.
func (m *blossomMatcher) augmentMatching(k int) {
	v, w := m.edges[k].i, m.edges[k].j
	for _, sp := range [2][2]int{{v, 2*k + 1}, {w, 2 * k}} {
		s, p := sp[0], sp[1]
		for {
			bs := m.inblossom[s]
			if bs >= m.n {
				m.augmentBlossom(bs, s)
			}
			m.mate[s] = p
			if m.labelend[bs] == -1 {
				// reached a single vertex: path ends here
				break
			}
			t := m.endpoint[m.labelend[bs]]
			bt := m.inblossom[t]
			s = m.endpoint[m.labelend[bt]]
			j := m.endpoint[m.labelend[bt]^1]
			if bt >= m.n {
				m.augmentBlossom(bt, j)
			}
			m.mate[j] = m.labelend[bt]
			p = m.labelend[bt] ^ 1
		}
	}
}

// run executes at most n stages; each stage either augments the matching or
// proves it maximum.
func (m *blossomMatcher) run() {
	n := m.n
	for stage := 0; stage < n; stage++ {
		for i := range m.label {
			m.label[i] = 0
			m.bestedge[i] = -1
		}
		for i := n; i < 2*n; i++ {
			m.blossombestedges[i] = nil
		}
		for i := range m.allowedge {
			m.allowedge[i] = false
		}
		m.queue = m.queue[:0]

		// Every single vertex roots an alternating tree.
		for v := 0; v < n; v++ {
			if m.mate[v] == -1 && m.label[m.inblossom[v]] == 0 {
				m.assignLabel(v, 1, -1)
			}
		}

		augmented := false
		for {
			augmented = m.scan()
			if augmented {
				break
			}
			if done := m.adjustDuals(); done {
				break
			}
		}

		if !augmented {
			return
		}

		// End of stage: expand S-blossoms whose dual reached zero.
		for b := n; b < 2*n; b++ {
			if m.blossomparent[b] == -1 && m.blossombase[b] >= 0 &&
				m.label[b] == 1 && m.dualvar[b] == 0 {
				m.expandBlossom(b, true)
			}
		}
	}
}

// scan grows the alternating forest over tight edges until the queue drains
// or an augmenting path is applied (returns true).
func (m *blossomMatcher) scan() bool {
	for len(m.queue) > 0 {
		v := m.queue[len(m.queue)-1]
		m.queue = m.queue[:len(m.queue)-1]

		for _, p := range m.neighbend[v] {
			k := p / 2
			w := m.endpoint[p]
			if m.inblossom[v] == m.inblossom[w] {
				continue // internal edge
			}
			var kslack float64
			if !m.allowedge[k] {
				kslack = m.slack(k)
				if kslack <= 0 {
					m.allowedge[k] = true
				}
			}

			switch {
			case m.allowedge[k]:
				switch {
				case m.label[m.inblossom[w]] == 0:
					// w is free: label it T and its mate S.
					m.assignLabel(w, 2, p^1)
				case m.label[m.inblossom[w]] == 1:
					// S-S edge: a blossom or an augmenting path.
					if base := m.scanBlossom(v, w); base >= 0 {
						m.addBlossom(base, k)
					} else {
						m.augmentMatching(k)
						return true
					}
				case m.label[w] == 0:
					// w inside a T-blossom but not yet reached: label it T.
					m.label[w] = 2
					m.labelend[w] = p ^ 1
				}
			case m.label[m.inblossom[w]] == 1:
				b := m.inblossom[v]
				if m.bestedge[b] == -1 || kslack < m.slack(m.bestedge[b]) {
					m.bestedge[b] = k
				}
			case m.label[w] == 0:
				if m.bestedge[w] == -1 || kslack < m.slack(m.bestedge[w]) {
					m.bestedge[w] = k
				}
			}
		}
	}

	return false
}

// adjustDuals performs one dual update and reports whether the stage is over
// (no further progress possible without augmenting).
func (m *blossomMatcher) adjustDuals() bool {
	n := m.n
	deltatype := -1
	var delta float64
	deltaedge, deltablossom := -1, -1

	// delta1: minimum vertex dual (only without the cardinality constraint).
	if !m.maxCardinality {
		deltatype = 1
		delta = minFloat(m.dualvar[:n])
	}
	// delta2: least slack from a free vertex to an S-vertex.
	for v := 0; v < n; v++ {
		if m.label[m.inblossom[v]] == 0 && m.bestedge[v] != -1 {
			d := m.slack(m.bestedge[v])
			if deltatype == -1 || d < delta {
				delta, deltatype, deltaedge = d, 2, m.bestedge[v]
			}
		}
	}
	// delta3: half the least slack between two S-blossoms.
	for b := 0; b < 2*n; b++ {
		if m.blossomparent[b] == -1 && m.label[b] == 1 && m.bestedge[b] != -1 {
			d := m.slack(m.bestedge[b]) / 2
			if deltatype == -1 || d < delta {
				delta, deltatype, deltaedge = d, 3, m.bestedge[b]
			}
		}
	}
	// delta4: minimum dual of a T-blossom.
	for b := n; b < 2*n; b++ {
		if m.blossombase[b] >= 0 && m.blossomparent[b] == -1 && m.label[b] == 2 &&
			(deltatype == -1 || m.dualvar[b] < delta) {
			delta, deltatype, deltablossom = m.dualvar[b], 4, b
		}
	}
	if deltatype == -1 {
		// Max-cardinality mode with nothing left to grow: final dual fix-up.
		deltatype = 1
		delta = minFloat(m.dualvar[:n])
		if delta < 0 {
			delta = 0
		}
	}

	for v := 0; v < n; v++ {
		switch m.label[m.inblossom[v]] {
		case 1:
			m.dualvar[v] -= delta
		case 2:
			m.dualvar[v] += delta
		}
	}
	for b := n; b < 2*n; b++ {
		if m.blossombase[b] >= 0 && m.blossomparent[b] == -1 {
			switch m.label[b] {
			case 1:
				m.dualvar[b] += delta
			case 2:
				m.dualvar[b] -= delta
			}
		}
	}

	switch deltatype {
	case 1:
		return true
	case 2:
		m.allowedge[deltaedge] = true
		i := m.edges[deltaedge].i
		if m.label[m.inblossom[i]] == 0 {
			i = m.edges[deltaedge].j
		}
		m.queue = append(m.queue, i)
	case 3:
		m.allowedge[deltaedge] = true
		m.queue = append(m.queue, m.edges[deltaedge].i)
	case 4:
		m.expandBlossom(deltablossom, false)
	}

	return false
}

func minFloat(xs []float64) float64 {
	mn := xs[0]
	for _, x := range xs[1:] {
		if x < mn {
			mn = x
		}
	}

	return mn
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
