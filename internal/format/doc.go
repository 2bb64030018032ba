// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package format turns raw reply text from the analytics backend into
display-ready structure.

Backend answers arrive as plain strings that may carry literal "\n" escape
sequences (payloads double-escape newlines in transit), "* " or "- " bullet
markers, and "**bold**" inline emphasis. Two interchangeable strategies
consume that text:

  - Format parses it into a sequence of Block values (paragraphs, bullet
    items, blank lines) with bold/plain spans. Output is structured data,
    never serialized markup, so nothing the backend sends can inject markup
    into the rendered view. This is the default strategy and the one the
    formatting guarantees are specified against.

  - MarkdownRenderer delegates to the glamour markdown renderer for richer
    answers (tables, headings, code fences). It applies the same escape
    normalization before rendering.

Both strategies are pure with respect to their input: the same raw string
always produces the same output.
*/
package format
