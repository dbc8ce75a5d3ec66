// Package dag turns the steps of a repair plan into a validated dependency
// graph and a deterministic execution order.
//
// Steps reference each other through `depends_on` using their `type.name`
// address. Build rejects duplicate addresses, references to undeclared steps,
// self references and cycles before any step runs, so a broken plan never
// touches the filesystem. Independent steps keep their declaration order.
package dag
