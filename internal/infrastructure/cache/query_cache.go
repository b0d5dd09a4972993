// Package cache es la caché de consultas del gateway: entradas clavadas
// por tipo de entidad más id o parámetros de filtro. Toda mutación
// invalida las claves afectadas y fuerza un refetch en la próxima
// lectura; no hay parcheo manual de resultados de mutación (sin merge
// optimista de la respuesta del servidor).
package cache

import (
	"strings"
	"sync"
)

// QueryCache caché en memoria, segura para uso concurrente.
type QueryCache struct {
	mu       sync.RWMutex
	entradas map[string]any
}

// New construye una caché vacía.
func New() *QueryCache {
	return &QueryCache{entradas: make(map[string]any)}
}

// Clave arma una clave a partir del tipo de entidad y sus partes
// (id o parámetros de filtro).
func Clave(tipo string, partes ...string) string {
	if len(partes) == 0 {
		return tipo
	}
	return tipo + ":" + strings.Join(partes, ":")
}

// Get devuelve la entrada si existe.
func (c *QueryCache) Get(clave string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entradas[clave]
	return v, ok
}

// Set guarda una entrada. Una escritura posterior con la misma clave gana
// (last-write-wins), igual que un refetch que supera a otro en vuelo.
func (c *QueryCache) Set(clave string, valor any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entradas[clave] = valor
}

// Invalidate elimina todas las entradas cuyo tipo de entidad coincide
// (la clave exacta y cualquier clave derivada tipo:*).
func (c *QueryCache) Invalidate(tipo string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefijo := tipo + ":"
	for k := range c.entradas {
		if k == tipo || strings.HasPrefix(k, prefijo) {
			delete(c.entradas, k)
		}
	}
}
