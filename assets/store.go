package assets

// Handle is a stable key into a Store. The zero Handle refers to nothing.
type Handle uint32

// Store is an arena of vector assets keyed by stable handles. Controllers
// hold handles rather than pointers, so several entities can target the
// same underlying asset and an asset can be swapped in after its slot was
// handed out.
type Store struct {
	slots []*VelloAsset
}

func NewStore() *Store {
	return &Store{}
}

// Add inserts a loaded asset and returns its handle.
func (s *Store) Add(a *VelloAsset) Handle {
	s.slots = append(s.slots, a)
	return Handle(len(s.slots))
}

// Reserve allocates a handle whose asset has not finished loading. The
// handle is valid immediately; Get returns nil until Fulfill is called.
func (s *Store) Reserve() Handle {
	return s.Add(nil)
}

// Fulfill attaches a loaded asset to a previously reserved handle.
func (s *Store) Fulfill(h Handle, a *VelloAsset) {
	if h == 0 || int(h) > len(s.slots) {
		return
	}
	s.slots[h-1] = a
}

// Get returns the asset for h, or nil if h is zero or the asset is not
// ready yet.
func (s *Store) Get(h Handle) *VelloAsset {
	if h == 0 || int(h) > len(s.slots) {
		return nil
	}
	return s.slots[h-1]
}
