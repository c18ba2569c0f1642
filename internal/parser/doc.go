// Package parser turns condition syntax into the ir model.
//
// Three entry points build on each other: ParseOperand for a single operand
// ("0xH1234", "d0x00ff", "12", "f1.5", "{recall}"), ParseRequirement for a
// flagged condition ("P:0xH1234!=d0xH1234.2."), and ParseLogic for a full
// definition made of groups and requirements. Every failure is reported as
// a *ParseError naming the category and the offending text.
package parser
