package gen

// workloadBody is the arithmetic instruction body shared by generated
// functions. It is written as inline assembly so the compiler consuming the
// artifact cannot optimize the work away; the x86 and aarch64 variants
// perform the same multiply/add chain.
const workloadBody = `int x=1, y=0, z=0, w=0, tmp=0;
for (int i = 0; i < 20; i++) {
#ifdef __aarch64__
  asm volatile (
      "mul %0, %0, %0\n\t"
      "mov %1, %0\n\t"
      "add %1, %1, #0x3\n\t"
      "mov %2, %1\n\t"
      "mul %2, %2, %0\n\t"
      "mov %4, #0x3039\n\t"
      "add %2, %2, %4\n\t"
      "mul %2, %2, %2\n\t"
      "add %2, %2, %0\n\t"
      "sub %2, %2, %1\n\t"
      "mov %3, %2\n\t"
: "=&r"(x), "=&r"(y), "=&r"(z), "=r"(w), "=r"(tmp)
: "0"(x), "1"(y), "2"(z) : );
#else
  asm volatile (
      "imul %0, %0\n\t"
      "mov %0, %1\n\t"
      "add $0x3, %1\n\t"
      "mov %1, %2\n\t"
      "imul %0, %2\n\t"
      "add $0x3039, %2\n\t"
      "imul %2, %2\n\t"
      "add %0, %2\n\t"
      "sub %1, %2\n\t"
      "mov %2, %3\n\t"
: "=&r"(x), "=&r"(y), "=&r"(z), "=r"(w)
: "0"(x), "1"(y), "2"(z) : );
#endif
}`
