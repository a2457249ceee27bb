package disjointset

// Parent exposes the raw parent pointer of v for white-box tests.
func (f *Forest) Parent(v int) int { return f.parent[v] }
