// Package domain contains the persistent domain entities of the mineral
// agent API. Entities validate themselves on construction and carry no
// storage or transport concerns.
package domain
