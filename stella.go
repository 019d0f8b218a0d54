// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// stella provides static type checking for Stella, a small functional language used for
// teaching type systems.
//
// Programs enable optional language features with extension pragmas. The checker is
// bidirectional: an expected type flows down into each expression and the synthesized type
// flows back up. Types left as `auto` are reconstructed by unification.
//
//
// Supported Features:
//
//   * Records, tuples, sums, variants, lists and references
//   * Pattern matching with exhaustiveness checking
//   * Exceptions with a declared or open-variant exception type
//   * Structural subtyping with Top and Bot
//   * Universal types over De Bruijn indexed type variables
//   * Type reconstruction with an occurs check
//
//
// Links:
//
// Stella: https://fizruk.github.io/stella/
//
// Bidirectional Typing (Dunfield, Krishnaswami): https://arxiv.org/abs/1908.05839
//
// Types and Programming Languages (Pierce, 2002)
package stella
