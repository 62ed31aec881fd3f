// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package avl

// Config is used to configure the tree. It consists of the total order over
// keys, shared by the Map, its iterators and its copies.
type Config[K any] struct {
	cmp func(K, K) int
}

// Compare compares two keys using the same comparison function as the Map.
func (c *Config[K]) Compare(a, b K) int { return c.cmp(a, b) }

type config[K, V any] struct {
	Config[K]
	np *nodePool[K, V]
}

func makeConfig[K, V any](cmp func(K, K) int) (c config[K, V]) {
	c.cmp = cmp
	c.np = getNodePool[K, V]()
	return c
}
