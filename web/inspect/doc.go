// Package inspect captures the observable state of an incoming HTTP
// request and decodes its body, so that endpoints can reflect exactly
// what was received back to the client. It contains no transport or
// routing logic; handlers feed it raw requests and serialize the
// results.
package inspect
