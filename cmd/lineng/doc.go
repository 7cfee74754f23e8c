// Lineng trains linear models on delimited datasets.
//
//	lineng regress --file houses.csv --shuffle
//	lineng classify --file iris.csv --labels 0,1,2 --lr 0.01 --epochs 10
//
// The last field of every record is the label. Datasets may be xz
// compressed or queried from SQLite with --db and --query.
package main
