// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "encoding/json"

const cartKey = "cart"

// cart decodes the cart slot. present is false when there is no slot;
// valid is false when the slot does not hold a list of ids.
func (s *Session) cart() (ids []int64, present, valid bool) {
	raw, ok := s.get(cartKey)
	if !ok {
		return nil, false, false
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, true, false
	}
	// "null" decodes without error but is not a list
	if ids == nil && string(raw) != "[]" {
		return nil, true, false
	}
	return ids, true, true
}

// Cart returns the product ids in the cart, in insertion order and with
// duplicates. A missing or malformed slot is reset to an empty cart, so a
// read may modify the session.
func (s *Session) Cart() []int64 {
	ids, present, valid := s.cart()
	if !present || !valid {
		s.set(cartKey, []int64{})
		return []int64{}
	}
	return ids
}

// Add appends id to the cart. Ids are not checked against the catalog.
func (s *Session) Add(id int64) {
	ids, _, valid := s.cart()
	if !valid {
		ids = []int64{}
	}
	s.set(cartKey, append(ids, id))
}

// Remove drops the first occurrence of id from the cart.
//
// It returns false without touching the session when there is no cart
// slot. Id 0 or a malformed slot empties the whole cart. Removing an id
// that is not in the cart changes nothing.
func (s *Session) Remove(id int64) bool {
	ids, present, valid := s.cart()
	if !present {
		return false
	}
	if id == 0 || !valid {
		s.set(cartKey, []int64{})
		return true
	}

	for i, v := range ids {
		if v == id {
			s.set(cartKey, append(ids[:i:i], ids[i+1:]...))
			break
		}
	}
	return true
}

// Clear empties the cart.
func (s *Session) Clear() {
	s.set(cartKey, []int64{})
}

// Contains reports whether id is in the cart without modifying the session.
func (s *Session) Contains(id int64) bool {
	ids, _, _ := s.cart()
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
