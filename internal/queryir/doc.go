// Package queryir provides an abstract representation of statement pattern
// queries over an indexed graph.
//
// A query is a tree of Match and Join nodes. A Match is one statement
// pattern whose positions are bound terms, named variables or wildcards.
// A Join combines two queries on their shared variables, the way
// SPARQL joins the triple patterns of a basic graph pattern:
//
//	?person <http://ex/knows> ?friend .
//	?friend <http://ex/name>  ?name .
//
// becomes
//
//	Join{
//	  Left:  Match{Graph: "people", Subject: Var{"person"}, Predicate: Bound{knows}, Object: Var{"friend"}},
//	  Right: Match{Graph: "people", Subject: Var{"friend"}, Predicate: Bound{name}, Object: Var{"name"}},
//	}
//
// Terms match under the standard order, not by spelling: a bound
// "1"^^xsd:int matches a stored "01"^^xsd:int, and two occurrences of a
// variable join on comparator equality.
//
// SEALED INTERFACES:
//
// Query and Node are sealed interfaces using the marker method pattern.
// Only types in this package can implement them, so backends can switch
// over them exhaustively. Both value and pointer forms are accepted.
//
// Backends live elsewhere: querysql compiles queries to SQLite.
package queryir
