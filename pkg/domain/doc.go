/*
Package domain contains the core domain models shared across marquee.

It defines the result types produced by the query engine, the sentinel
errors that drive session control flow, the action requests a host renders,
and the lifecycle events used for observability. This package is kept pure
and free of external dependencies like I/O or HTTP, following Hexagonal
Architecture principles.

# Key Entities

  - Response: The outcome of dispatching one question (answers, no-answer,
    no-match or empty input).
  - ActionRequest: A structural representation of what the host should
    render or surface.
  - LifecycleHooks: Optional callbacks fired around query resolution and
    API calls.
*/
package domain
