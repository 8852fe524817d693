/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package backend

import (
	"strconv"

	"github.com/VictoriaMetrics/fastcache"
)

// keyCache holds proving keys, which are public parameters determined by the
// proof system and the seed. Nothing else may be stored here.
type keyCache struct {
	cache *fastcache.Cache
}

func newKeyCache(maxBytes int) *keyCache {
	if maxBytes <= 0 {
		return nil
	}
	return &keyCache{cache: fastcache.New(maxBytes)}
}

func keyCacheKey(zkpLib, op string, seed uint64) []byte {
	return []byte(zkpLib + "/" + op + "/" + strconv.FormatUint(seed, 10))
}

// get returns the cached key. Proving keys are never empty, so an empty
// result is a miss.
func (k *keyCache) get(zkpLib, op string, seed uint64) (string, bool) {
	if k == nil {
		return "", false
	}
	v := k.cache.GetBig(nil, keyCacheKey(zkpLib, op, seed))
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (k *keyCache) put(zkpLib, op string, seed uint64, key string) {
	if k == nil || key == "" {
		return
	}
	k.cache.SetBig(keyCacheKey(zkpLib, op, seed), []byte(key))
}
