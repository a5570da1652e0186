/*
Package parser turns a sol token stream into a syntax tree.

Grammar

	program     --> scope EOF ;
	scope       --> ( def | typedef | case | for | tuple ";"? )* ;
	def         --> "def" IDENT termexpr ;
	typedef     --> "type" IDENT termexpr ;
	termexpr    --> abstraction
	              | logical ( abstraction | ";" ) ;
	termbody    --> "=>" termexpr | block ;
	case        --> "case" logical termbody else? ;
	else        --> "else" ( termbody | "case"? logical termbody else? ) ;
	for         --> "for" logical ( ";" logical ( ";" logical )? )? termbody ;
	tuple       --> ( expr ( "," expr )* ","? )? ;
	expr        --> logical abstraction? ;
	abstraction --> ( "->" logical )? "$"? body ;
	body        --> "=>" logical | block ;
	block       --> "{" scope "}" ;
	logical     --> comparison ( ( "&&" | "||" ) comparison )* ;
	comparison  --> assertion ( ( "==" | "!=" | ">" | ">=" | "<" | "<=" ) assertion )* ;
	assertion   --> additive ( "::" additive )? ;
	additive    --> multiplicative ( ( "+" | "-" ) multiplicative )* ;
	multiplicative --> prefix ( ( "*" | "/" | "%" ) prefix )* ;
	prefix      --> ( "!" | "-" ) prefix
	              | ( "val" | "var" | "set" ) IDENT
	              | suffix ;
	suffix      --> atom atom* ;
	atom        --> "(" scope ")" | "\" IDENT | FLOAT | INTEGER | STRING | IDENT ;

Inside an abstraction, termbody and abstraction take the body in place of
termbody when reached from expr. The ";" after a plain termexpr may be left
out at the end of input, before the ")" or "}" closing the enclosing scope,
and before "else" in the branch of a case.

The grammar is not LL(1) as written: abstractions, declarations and plain
expressions share leading tokens. Every choice is still made with one token
of lookahead, after the common prefix (a logical expression) is parsed.

A scope made of a single expression without a trailing ";" is that
expression. Any other non-empty scope is an ast.ScopeExpr whose Discard flag
is set when its last statement was terminated, or was a declaration, case or
loop. An empty scope is the empty tuple.

The same grammar in EBNF, checked with golang.org/x/exp/ebnf, is available
as Grammar.
*/
package parser
