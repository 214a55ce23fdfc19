// Package tokentax provides the canonical record used to describe
// cryptocurrency-exchange activity in the TokenTax tabular format.
//
// A [Rec] is one row of the format: trades, deposits, withdrawals, income,
// mining, gifts, spending and lost or stolen funds. The record type decides
// which of the optional amount fields is authoritative:
//   - [Rec.Asset] and [Rec.Quantity] return the subject of the transaction
//     (the buy side for Trade, Deposit, Income and Mining, the sell side
//     for everything else).
//   - [Rec.OtherAsset] returns the counterpart currency.
//
// Records are persisted as CSV (see [DecodeCSV] and [EncodeCSV]) with the
// header
//
//	Type,BuyAmount,BuyCurrency,SellAmount,SellCurrency,FeeAmount,FeeCurrency,Exchange,Group,Comment,Date
//
// or as JSONL using the same field names. Dates are UTC and written as
// "2006-01-02 15:04:05"; in memory they are milliseconds since the epoch.
//
// This package serves as the foundation of the `ttr` command-line tool.
package tokentax
