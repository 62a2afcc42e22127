package ledger

import "strconv"

// maxChunkSize splits the candidate index so a single value never grows past
// the host's key/value size limit.
const maxChunkSize = 2500

func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

func (s *State) chunkCount(base string) (int, error) {
	raw, ok := s.get(chunkCounterKey(base))
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrCorruptState.Clone().SetData("chunks", raw)
	}
	return n, nil
}

func (s *State) loadChunk(base string, chunk int) (candidateChunk, error) {
	raw, ok := s.get(chunkKey(base, chunk))
	if !ok {
		return nil, nil
	}
	return decodeCandidateChunk(raw)
}

// appendToIndex adds c to the last chunk, opening a new chunk when it is full.
// Callers only append candidates that were never voted for, so the index has
// no duplicates without scanning it.
func (s *State) appendToIndex(base string, c Candidate) error {
	chunks, err := s.chunkCount(base)
	if err != nil {
		return err
	}
	if chunks > 0 {
		last, err := s.loadChunk(base, chunks-1)
		if err != nil {
			return err
		}
		if len(last) < maxChunkSize {
			last = append(last, c)
			s.put(chunkKey(base, chunks-1), encodeCandidateChunk(last))
			return nil
		}
	}
	s.put(chunkKey(base, chunks), encodeCandidateChunk(candidateChunk{c}))
	s.put(chunkCounterKey(base), strconv.Itoa(chunks+1))
	return nil
}

// indexEntries collects the whole index in insertion order.
func (s *State) indexEntries(base string) ([]Candidate, error) {
	chunks, err := s.chunkCount(base)
	if err != nil {
		return nil, err
	}
	all := []Candidate{}
	for i := 0; i < chunks; i++ {
		ids, err := s.loadChunk(base, i)
		if err != nil {
			return nil, err
		}
		all = append(all, ids...)
	}
	return all, nil
}
